package types

// Species is an immutable template for a kind of creature. Types holds
// non-owning handles into the Registry that issued them, in the order the
// species declares them.
type Species struct {
	ID    uint16   `json:"id"`
	Name  string   `json:"name"`
	Types []TypeID `json:"types"`

	// Bestiary is nil unless the deployment enables bestiary data
	// (Config.Bestiary).
	Bestiary *BestiaryEntry `json:"bestiary,omitempty"`
}

// BestiaryEntry holds the optional descriptive fields of a species.
type BestiaryEntry struct {
	Category         string `json:"category"`
	Description      string `json:"description"`
	WeightHectograms uint16 `json:"weight_hectograms"`
	HeightDecimeters uint16 `json:"height_decimeters"`
}

// NewSpecies creates a species with the given types. The types slice is
// copied; later changes to the caller's slice do not affect the species.
func NewSpecies(id uint16, name string, types ...TypeID) *Species {
	ts := make([]TypeID, len(types))
	copy(ts, types)
	return &Species{
		ID:    id,
		Name:  name,
		Types: ts,
	}
}

// HasType reports whether the species lists the given type.
func (s *Species) HasType(id TypeID) bool {
	for _, t := range s.Types {
		if t == id {
			return true
		}
	}
	return false
}

// WeightKilograms returns the weight in kilograms.
func (b *BestiaryEntry) WeightKilograms() float64 {
	return float64(b.WeightHectograms) / 10
}

// HeightMeters returns the height in meters.
func (b *BestiaryEntry) HeightMeters() float64 {
	return float64(b.HeightDecimeters) / 10
}
