package session

import (
	"crypto/sha256"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yathish26/GrojetDPartner/internal/models"
	"github.com/Yathish26/GrojetDPartner/internal/secure"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	key := sha256.Sum256([]byte("session-test-key"))
	secrets, err := secure.NewStoreWithKey(filepath.Join(t.TempDir(), "credentials.yaml"), key[:])
	require.NoError(t, err)
	return NewStore(secrets)
}

func TestStore_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		profile  map[string]any
		expected bool
	}{
		{
			name:     "nothing stored",
			expected: false,
		},
		{
			name:     "token only",
			token:    "abc",
			expected: false,
		},
		{
			name:     "profile only",
			profile:  map[string]any{"id": "1"},
			expected: false,
		},
		{
			name:     "token and profile",
			token:    "abc",
			profile:  map[string]any{"id": "1"},
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newTestStore(t)

			if len(test.token) > 0 {
				require.True(t, store.SetToken(test.token))
			}
			if test.profile != nil {
				require.True(t, store.SetProfile(test.profile))
			}

			assert.Equal(t, test.expected, store.IsAuthenticated())
		})
	}
}

func TestStore_TokenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Token())
	require.True(t, store.SetToken("bearer-token"))
	assert.Equal(t, "bearer-token", store.Token())
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)

	profile := map[string]any{
		"id":    "42",
		"name":  "Jane",
		"email": "jane@grojet.app",
		"zone":  "North",
		"tags":  []any{"bike", "evening"},
		"stats": map[string]any{"deliveries": float64(128)},
	}

	require.True(t, store.SetProfile(profile))
	assert.Equal(t, profile, store.Profile())
}

func TestStore_ProfileAbsent(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Profile())
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.True(t, store.Establish("abc", map[string]any{"id": "1"}, models.RoleAgent))
	require.True(t, store.IsAuthenticated())

	assert.True(t, store.Clear())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Profile())
	assert.Equal(t, models.RoleNone, store.Role())

	// Clearing an already-empty session stays true
	assert.True(t, store.Clear())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Role(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, models.RoleNone, store.Role())

	require.True(t, store.SetRole(models.RoleAdmin))
	assert.Equal(t, models.RoleAdmin, store.Role())
}

func TestStore_Establish(t *testing.T) {
	store := newTestStore(t)

	profile := map[string]any{"id": "1", "name": "Jane"}
	require.True(t, store.Establish("abc", profile, models.RoleAgent))

	assert.Equal(t, "abc", store.Token())
	assert.Equal(t, profile, store.Profile())
	assert.Equal(t, models.RoleAgent, store.Role())
	assert.True(t, store.IsAuthenticated())
}

func TestStore_AgentInfo(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		store := newTestStore(t)
		require.True(t, store.SetProfile(map[string]any{
			"id":    "1",
			"name":  "Jane",
			"email": "jane@grojet.app",
			"zone":  "North",
			"phone": "555-0100",
		}))

		info := store.AgentInfo()
		require.NotNil(t, info)
		assert.Equal(t, "Jane", info.Name)
		assert.Equal(t, "North", info.Zone)
		assert.Equal(t, "555-0100", info.Phone)
	})

	t.Run("missing fields come back empty", func(t *testing.T) {
		store := newTestStore(t)
		require.True(t, store.SetProfile(map[string]any{"name": "Jane"}))

		info := store.AgentInfo()
		require.NotNil(t, info)
		assert.Equal(t, "Jane", info.Name)
		assert.Empty(t, info.Zone)
		assert.Empty(t, info.Email)
	})

	t.Run("non-string fields are ignored", func(t *testing.T) {
		store := newTestStore(t)
		require.True(t, store.SetProfile(map[string]any{"id": float64(7), "name": "Jane"}))

		info := store.AgentInfo()
		require.NotNil(t, info)
		assert.Empty(t, info.ID)
	})

	t.Run("no profile", func(t *testing.T) {
		store := newTestStore(t)
		assert.Nil(t, store.AgentInfo())
	})
}
