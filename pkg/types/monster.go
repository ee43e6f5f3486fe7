package types

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNilSpecies is returned when a species reference is required but nil.
var ErrNilSpecies = errors.New("species must not be nil")

// Monster is a mutable instance of a Species in live game state. Discarding
// a Monster has no effect on its Species or on the Registry.
type Monster struct {
	MonsterID string   `json:"monster_id"` // UUID v7, generated on creation.
	Name      string   `json:"name"`
	Species   *Species `json:"species"`
}

// NewMonster creates a monster of the given species with a fresh ID.
// Returns ErrNilSpecies if species is nil.
func NewMonster(name string, species *Species) (*Monster, error) {
	if species == nil {
		return nil, ErrNilSpecies
	}
	return &Monster{
		MonsterID: generateUUID(),
		Name:      name,
		Species:   species,
	}, nil
}

// generateUUID generates a new UUID v7 for monster IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
