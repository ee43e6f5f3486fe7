package types

// Config holds runtime feature switches for a Monster Maker deployment.
type Config struct {
	// Bestiary enables the optional descriptive fields on Species.
	Bestiary bool `json:"bestiary" yaml:"bestiary"`
}

// Describe attaches entry to s when the bestiary extension is enabled and
// clears it otherwise. It is the single place where the feature switch is
// applied to species data.
func (c Config) Describe(s *Species, entry BestiaryEntry) {
	if !c.Bestiary {
		s.Bestiary = nil
		return
	}
	e := entry
	s.Bestiary = &e
}
