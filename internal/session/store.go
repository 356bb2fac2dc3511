package session

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Yathish26/GrojetDPartner/internal/models"
	"github.com/Yathish26/GrojetDPartner/internal/secure"
)

const (
	keyToken   = "sessionToken"
	keyProfile = "sessionProfile"
	keyRole    = "sessionRole"
)

// Store persists the bearer token and the signed-in profile in the secure
// credential store. Storage failures are never surfaced to callers: reads
// fail to "not logged in" and writes report false, matching how every
// command treats an absent session.
type Store struct {
	secrets *secure.Store
}

func NewStore(secrets *secure.Store) *Store {
	return &Store{secrets: secrets}
}

// Token returns the stored bearer token, or "" when absent or when the
// credential store cannot be read.
func (s *Store) Token() string {
	token, err := s.secrets.Get(keyToken)
	if err != nil {
		if !errors.Is(err, secure.ErrNotFound) {
			logrus.WithError(err).Errorln("Error getting session token")
		}
		return ""
	}
	return token
}

// SetToken persists the bearer token. Returns false on storage failure.
func (s *Store) SetToken(token string) bool {
	if err := s.secrets.Set(keyToken, token); err != nil {
		logrus.WithError(err).Errorln("Error setting session token")
		return false
	}
	return true
}

// Profile returns the stored profile document, or nil when absent, when the
// stored value is not valid JSON, or when the credential store cannot be
// read. The three cases are indistinguishable to the caller.
func (s *Store) Profile() map[string]any {
	raw, err := s.secrets.Get(keyProfile)
	if err != nil {
		if !errors.Is(err, secure.ErrNotFound) {
			logrus.WithError(err).Errorln("Error getting session profile")
		}
		return nil
	}

	var profile map[string]any
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logrus.WithError(err).Errorln("Error parsing session profile")
		return nil
	}
	return profile
}

// SetProfile serializes and persists the profile document.
func (s *Store) SetProfile(profile map[string]any) bool {
	data, err := json.Marshal(profile)
	if err != nil {
		logrus.WithError(err).Errorln("Error serializing session profile")
		return false
	}
	if err := s.secrets.Set(keyProfile, string(data)); err != nil {
		logrus.WithError(err).Errorln("Error setting session profile")
		return false
	}
	return true
}

// Role returns the stored principal role, or RoleNone when no session exists.
func (s *Store) Role() models.Role {
	role, err := s.secrets.Get(keyRole)
	if err != nil {
		if !errors.Is(err, secure.ErrNotFound) {
			logrus.WithError(err).Errorln("Error getting session role")
		}
		return models.RoleNone
	}
	return models.Role(role)
}

// SetRole persists the principal role.
func (s *Store) SetRole(role models.Role) bool {
	if err := s.secrets.Set(keyRole, string(role)); err != nil {
		logrus.WithError(err).Errorln("Error setting session role")
		return false
	}
	return true
}

// Establish writes the full session in one call. This is the login happy
// path; the three keys are still separate writes underneath, so a crash in
// between can leave a partial session, which IsAuthenticated reads as
// logged out.
func (s *Store) Establish(token string, profile map[string]any, role models.Role) bool {
	ok := s.SetToken(token)
	ok = s.SetProfile(profile) && ok
	ok = s.SetRole(role) && ok
	return ok
}

// Clear deletes every session key. Best effort: all deletes are attempted
// even when one fails.
func (s *Store) Clear() bool {
	ok := true
	for _, key := range []string{keyProfile, keyToken, keyRole} {
		if err := s.secrets.Delete(key); err != nil {
			logrus.WithError(err).WithField("key", key).Errorln("Error clearing session")
			ok = false
		}
	}
	return ok
}

// IsAuthenticated reports whether both the token and the profile are
// present. A partially written session counts as logged out.
func (s *Store) IsAuthenticated() bool {
	return s.Profile() != nil && len(s.Token()) > 0
}

// AgentInfo returns the display fields of the stored profile. Fields the
// server did not include come back empty.
func (s *Store) AgentInfo() *models.AgentInfo {
	profile := s.Profile()
	if profile == nil {
		return nil
	}

	return &models.AgentInfo{
		ID:    stringField(profile, "id"),
		Name:  stringField(profile, "name"),
		Email: stringField(profile, "email"),
		Zone:  stringField(profile, "zone"),
		Phone: stringField(profile, "phone"),
	}
}

func stringField(profile map[string]any, key string) string {
	if v, ok := profile[key].(string); ok {
		return v
	}
	return ""
}
