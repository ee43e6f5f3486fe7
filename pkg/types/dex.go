package types

import (
	"errors"
	"sort"
	"sync"
)

// Dex errors.
var (
	ErrSpeciesNotFound    = errors.New("species not found")
	ErrDuplicateSpeciesID = errors.New("species id already registered")
	ErrInvalidName        = errors.New("invalid name")
)

// Dex is a catalog of species keyed by species ID.
type Dex struct {
	mu      sync.RWMutex
	species map[uint16]*Species
}

// NewDex returns an empty Dex.
func NewDex() *Dex {
	return &Dex{species: make(map[uint16]*Species)}
}

// Add registers a species.
// Returns ErrInvalidName if the name is empty and ErrDuplicateSpeciesID if
// another species already uses the ID.
func (d *Dex) Add(s *Species) error {
	if s == nil {
		return ErrNilSpecies
	}
	if s.Name == "" {
		return ErrInvalidName
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.species[s.ID]; ok {
		return ErrDuplicateSpeciesID
	}
	d.species[s.ID] = s
	return nil
}

// Get returns the species with the given ID.
// Returns ErrSpeciesNotFound if no species has that ID.
func (d *Dex) Get(id uint16) (*Species, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.species[id]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	return s, nil
}

// All returns every species ordered by ID ascending.
func (d *Dex) All() []*Species {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]*Species, 0, len(d.species))
	for _, s := range d.species {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Len returns the number of species.
func (d *Dex) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.species)
}
