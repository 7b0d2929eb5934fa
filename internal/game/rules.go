package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RankRange is an inclusive rank interval for one card role.
type RankRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Count returns the number of ranks in the range.
func (r RankRange) Count() int {
	return r.Max - r.Min + 1
}

// Rules holds the tunable parameters of a dungeon run. The defaults are the
// classic Scoundrel rules; a YAML file may override them.
type Rules struct {
	MaxHealth    int       `yaml:"max_health"`
	RoomSize     int       `yaml:"room_size"`
	PlaysPerRoom int       `yaml:"plays_per_room"`
	MonsterRanks RankRange `yaml:"monster_ranks"`
	WeaponRanks  RankRange `yaml:"weapon_ranks"`
	PotionRanks  RankRange `yaml:"potion_ranks"`
}

// DefaultRules returns the standard 44-card dungeon: monsters 2-A in both
// black suits, weapons 2-10 of diamonds, potions 2-10 of hearts.
func DefaultRules() Rules {
	return Rules{
		MaxHealth:    20,
		RoomSize:     4,
		PlaysPerRoom: 3,
		MonsterRanks: RankRange{Min: 2, Max: 14},
		WeaponRanks:  RankRange{Min: 2, Max: 10},
		PotionRanks:  RankRange{Min: 2, Max: 10},
	}
}

// LoadRules parses a YAML rules file. Fields absent from the file keep their
// default values.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}

	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules YAML: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// Validate checks the rules for internal consistency.
func (r Rules) Validate() error {
	if r.MaxHealth < 1 {
		return fmt.Errorf("max_health must be positive, got %d", r.MaxHealth)
	}
	if r.RoomSize < 2 {
		return fmt.Errorf("room_size must be at least 2, got %d", r.RoomSize)
	}
	if r.PlaysPerRoom < 1 || r.PlaysPerRoom >= r.RoomSize {
		return fmt.Errorf("plays_per_room must be in [1, room_size), got %d", r.PlaysPerRoom)
	}
	for _, rr := range []struct {
		name string
		r    RankRange
	}{
		{"monster_ranks", r.MonsterRanks},
		{"weapon_ranks", r.WeaponRanks},
		{"potion_ranks", r.PotionRanks},
	} {
		if rr.r.Min < 2 || rr.r.Max > 14 || rr.r.Min > rr.r.Max {
			return fmt.Errorf("%s must be an interval within [2, 14], got %d-%d", rr.name, rr.r.Min, rr.r.Max)
		}
	}
	return nil
}

// DeckSize returns the number of cards the rules produce (two monster suits,
// one weapon suit, one potion suit).
func (r Rules) DeckSize() int {
	return 2*r.MonsterRanks.Count() + r.WeaponRanks.Count() + r.PotionRanks.Count()
}
