package common

import (
	"crypto/sha256"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
)

// GetClientIdentifier returns a UUID that uniquely identifies this device.
// It uses the machine's hardware ID so the identifier is stable across runs;
// the backend sees it as the X-Device-Id header on every request.
func GetClientIdentifier() uuid.UUID {

	id, err := machineid.ID()
	if err != nil {
		// Fallback to a random ephemeral UUID if machine ID cannot be obtained
		return uuid.New()
	}

	hash := sha256.Sum256([]byte(id))
	return uuid.UUID(hash[:16])
}
