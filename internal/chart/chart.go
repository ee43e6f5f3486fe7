// Package chart builds a type Registry and species Dex from a declarative
// Definition, typically decoded from config.yaml.
package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/monstermaker429/monstermaker-core/pkg/types"
)

// Definition errors.
var (
	ErrInvalidSpeciesID  = errors.New("species id out of range")
	ErrInvalidMultiplier = errors.New("multiplier must be finite")
)

// Chart is a populated Registry and Dex together with the feature switches
// they were built under.
type Chart struct {
	Registry *types.Registry
	Dex      *types.Dex
	Config   types.Config
}

// Build creates every declared type, then applies matchups, then adds
// species. Names are resolved against the whole type list, so a matchup may
// refer to a type declared later in the definition.
//
// A name that matches no type yields ErrTypeNotFound; a name shared by more
// than one type yields ErrAmbiguousType. Both are wrapped with the offending
// name. Non-finite multipliers yield ErrInvalidMultiplier and species IDs
// outside 0..65535 yield ErrInvalidSpeciesID.
func Build(def Definition) (*Chart, error) {
	c := &Chart{
		Registry: types.NewRegistry(),
		Dex:      types.NewDex(),
		Config:   types.Config{Bestiary: def.Bestiary},
	}

	ids := make([]types.TypeID, len(def.Types))
	for i, td := range def.Types {
		ids[i] = c.Registry.NewType(td.Name)
	}

	matchups := 0
	for i, td := range def.Types {
		for _, m := range td.Against {
			attacker, err := c.resolve(m.Attacker)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", td.Name, err)
			}
			if math.IsNaN(m.Multiplier) || math.IsInf(m.Multiplier, 0) {
				return nil, fmt.Errorf("type %q: attacker %q: %w: %v", td.Name, m.Attacker, ErrInvalidMultiplier, m.Multiplier)
			}
			if err := c.Registry.SetEffectiveness(ids[i], attacker, m.Multiplier); err != nil {
				return nil, fmt.Errorf("type %q: set effectiveness: %w", td.Name, err)
			}
			matchups++
		}
	}

	for _, sd := range def.Species {
		s, err := c.buildSpecies(sd)
		if err != nil {
			return nil, fmt.Errorf("species %d: %w", sd.ID, err)
		}
		if err := c.Dex.Add(s); err != nil {
			return nil, fmt.Errorf("species %d: %w", sd.ID, err)
		}
	}

	slog.Info("loaded type chart",
		"types", c.Registry.Len(),
		"matchups", matchups,
		"species", c.Dex.Len(),
		"bestiary", c.Config.Bestiary)
	return c, nil
}

func (c *Chart) buildSpecies(sd SpeciesDef) (*types.Species, error) {
	if sd.ID < 0 || sd.ID > math.MaxUint16 {
		return nil, ErrInvalidSpeciesID
	}
	ts := make([]types.TypeID, 0, len(sd.Types))
	for _, name := range sd.Types {
		id, err := c.resolve(name)
		if err != nil {
			return nil, err
		}
		ts = append(ts, id)
	}

	s := types.NewSpecies(uint16(sd.ID), sd.Name, ts...)
	c.Config.Describe(s, types.BestiaryEntry{
		Category:         sd.Category,
		Description:      sd.Description,
		WeightHectograms: sd.WeightHectograms,
		HeightDecimeters: sd.HeightDecimeters,
	})
	slog.Debug("built species", "id", s.ID, "name", s.Name, "types", len(s.Types))
	return s, nil
}

// resolve maps a type name to the single node that carries it.
func (c *Chart) resolve(name string) (types.TypeID, error) {
	ids := c.Registry.LookupAll(name)
	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("%w: %q", types.ErrTypeNotFound, name)
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("%w: %q matches %d types", types.ErrAmbiguousType, name, len(ids))
	}
}

// Effectiveness returns the multiplier of the attacker type on the defender
// type, both given by name. Unknown or ambiguous names are errors; the
// default multiplier is only returned for resolved pairs with no entry.
func (c *Chart) Effectiveness(defender, attacker string) (float64, error) {
	d, err := c.resolve(defender)
	if err != nil {
		return 0, fmt.Errorf("defender: %w", err)
	}
	a, err := c.resolve(attacker)
	if err != nil {
		return 0, fmt.Errorf("attacker: %w", err)
	}
	return c.Registry.Effectiveness(d, a), nil
}

// TypeNames returns the display names of the given types, in order.
func (c *Chart) TypeNames(ids []types.TypeID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, err := c.Registry.Name(id)
		if err != nil {
			name = fmt.Sprintf("#%d", id)
		}
		names = append(names, name)
	}
	return names
}
