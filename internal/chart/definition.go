package chart

// Definition is the declarative form of a type chart as it appears in
// config.yaml. Types and species refer to types by name; Build resolves the
// names to registry IDs.
type Definition struct {
	Bestiary bool         `yaml:"bestiary" mapstructure:"bestiary"`
	Types    []TypeDef    `yaml:"types" mapstructure:"types"`
	Species  []SpeciesDef `yaml:"species,omitempty" mapstructure:"species"`
}

// TypeDef declares one type and the multipliers other types have on it.
type TypeDef struct {
	Name    string    `yaml:"name" mapstructure:"name"`
	Against []Matchup `yaml:"against,omitempty" mapstructure:"against"`
}

// Matchup is the multiplier of an attacking type on the enclosing TypeDef.
// Matchups are a list rather than a map so type names keep their case
// through viper, which lowercases map keys.
type Matchup struct {
	Attacker   string  `yaml:"attacker" mapstructure:"attacker"`
	Multiplier float64 `yaml:"multiplier" mapstructure:"multiplier"`
}

// SpeciesDef declares one species. The descriptive fields are applied only
// when the definition enables the bestiary. ID is an int so out-of-range
// values reach Build instead of wrapping during decode.
type SpeciesDef struct {
	ID               int      `yaml:"id" mapstructure:"id"`
	Name             string   `yaml:"name" mapstructure:"name"`
	Types            []string `yaml:"types" mapstructure:"types"`
	Category         string   `yaml:"category,omitempty" mapstructure:"category"`
	Description      string   `yaml:"description,omitempty" mapstructure:"description"`
	WeightHectograms uint16   `yaml:"weight_hectograms,omitempty" mapstructure:"weight_hectograms"`
	HeightDecimeters uint16   `yaml:"height_decimeters,omitempty" mapstructure:"height_decimeters"`
}

// DefaultDefinition returns the built-in chart used when configuration
// declares no types.
func DefaultDefinition() Definition {
	return Definition{
		Bestiary: false,
		Types:    defaultTypes(),
		Species:  defaultSpecies(),
	}
}

func defaultTypes() []TypeDef {
	return []TypeDef{
		{
			Name: "normal",
			Against: []Matchup{
				{Attacker: "ghost", Multiplier: 0.0},
			},
		},
		{
			Name: "fire",
			Against: []Matchup{
				{Attacker: "fire", Multiplier: 0.5},
				{Attacker: "water", Multiplier: 2.0},
				{Attacker: "grass", Multiplier: 0.5},
			},
		},
		{
			Name: "water",
			Against: []Matchup{
				{Attacker: "fire", Multiplier: 0.5},
				{Attacker: "water", Multiplier: 0.5},
				{Attacker: "grass", Multiplier: 2.0},
				{Attacker: "electric", Multiplier: 2.0},
			},
		},
		{
			Name: "grass",
			Against: []Matchup{
				{Attacker: "fire", Multiplier: 2.0},
				{Attacker: "water", Multiplier: 0.5},
				{Attacker: "grass", Multiplier: 0.5},
				{Attacker: "electric", Multiplier: 0.5},
			},
		},
		{
			Name: "electric",
			Against: []Matchup{
				{Attacker: "electric", Multiplier: 0.5},
			},
		},
		{
			Name: "ghost",
			Against: []Matchup{
				{Attacker: "normal", Multiplier: 0.0},
				{Attacker: "ghost", Multiplier: 2.0},
			},
		},
	}
}

func defaultSpecies() []SpeciesDef {
	return []SpeciesDef{
		{ID: 1, Name: "Sproutle", Types: []string{"grass"}, Category: "Seed", Description: "Stores sunlight in the bulb on its back.", WeightHectograms: 69, HeightDecimeters: 7},
		{ID: 2, Name: "Cindrake", Types: []string{"fire"}, Category: "Lizard", Description: "Its tail flame flickers with its mood.", WeightHectograms: 85, HeightDecimeters: 6},
		{ID: 3, Name: "Puddlet", Types: []string{"water"}, Category: "Tadpole", Description: "Sprays water from its mouth when startled.", WeightHectograms: 90, HeightDecimeters: 5},
		{ID: 4, Name: "Voltmouse", Types: []string{"electric"}, Category: "Mouse", Description: "Discharges static from its cheeks.", WeightHectograms: 60, HeightDecimeters: 4},
		{ID: 5, Name: "Wispen", Types: []string{"ghost"}, Category: "Wisp", Description: "Drifts through walls on moonless nights.", WeightHectograms: 1, HeightDecimeters: 13},
		{ID: 6, Name: "Steamander", Types: []string{"fire", "water"}, Category: "Geyser", Description: "Vents scalding steam from its back.", WeightHectograms: 250, HeightDecimeters: 11},
	}
}
