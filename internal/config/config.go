package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/keys"
	"github.com/ericogr/game-balance/internal/logging"
)

type modifierEntry struct {
	Attribute  string  `json:"attribute"`
	Multiplier float64 `json:"multiplier"`
	BaseBonus  float64 `json:"base_bonus"`
}

type statEntry struct {
	Name          string          `json:"name"`
	BaseValue     float64         `json:"base_value"`
	PerLevelBonus float64         `json:"per_level_bonus"`
	Modifiers     []modifierEntry `json:"modifiers"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Seed schema applied to every newly created project. Both keys are
	// optional; omitted keys fall back to the classic four-attribute RPG
	// defaults.
	DefaultAttributes      []string    `json:"default_attributes"`
	DefaultStatDefinitions []statEntry `json:"default_stat_definitions"`
}

// LoadedConfig contains the server address and the default schema seeded
// into new projects.
type LoadedConfig struct {
	ServerAddress          string
	DefaultAttributes      []string
	DefaultStatDefinitions []game.StatDefinition
}

// fallbackAttributes and fallbackStats match the defaults the balance tool
// shipped with; they apply when the config file omits the corresponding key.
var fallbackAttributes = []string{"strength", "dexterity", "constitution", "intelligence"}

var fallbackStats = []game.StatDefinition{
	{Name: "health", BaseValue: 100, PerLevelBonus: 10, Modifiers: []game.Modifier{{Attribute: "constitution", Multiplier: 5}}},
	{Name: "mana", BaseValue: 50, PerLevelBonus: 5, Modifiers: []game.Modifier{{Attribute: "intelligence", Multiplier: 3}}},
	{Name: "power", BaseValue: 20, PerLevelBonus: 2, Modifiers: []game.Modifier{{Attribute: "strength", Multiplier: 2}}},
	{Name: "initiative", BaseValue: 10, PerLevelBonus: 1, Modifiers: []game.Modifier{{Attribute: "dexterity", Multiplier: 1.5}}},
}

// LoadConfig reads the configuration file at path, validates the default
// schema and returns the loaded settings. Duplicate stat names are a
// configuration error; modifiers referencing attributes outside the default
// set are tolerated (they contribute zero until the attribute exists) and
// only logged.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	attrs := keys.CanonicalNames(rc.DefaultAttributes)
	if len(attrs) == 0 {
		attrs = fallbackAttributes
	}

	defs, err := buildStatDefinitions(path, rc.DefaultStatDefinitions, attrs)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		defs = fallbackStats
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		ServerAddress:          addr,
		DefaultAttributes:      attrs,
		DefaultStatDefinitions: defs,
	}, nil
}

func buildStatDefinitions(path string, entries []statEntry, attrs []string) ([]game.StatDefinition, error) {
	attrSet := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		attrSet[a] = struct{}{}
	}

	out := make([]game.StatDefinition, 0, len(entries))
	nameSet := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		name := keys.CanonicalName(e.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: default stat definition missing 'name'", path)
		}
		if _, exists := nameSet[name]; exists {
			return nil, fmt.Errorf("config file %s: duplicate default stat name '%s'", path, e.Name)
		}
		nameSet[name] = struct{}{}

		mods := make([]game.Modifier, 0, len(e.Modifiers))
		modSeen := make(map[string]struct{}, len(e.Modifiers))
		for _, m := range e.Modifiers {
			attr := keys.CanonicalName(m.Attribute)
			if attr == "" {
				return nil, fmt.Errorf("config file %s: stat '%s' has a modifier missing 'attribute'", path, e.Name)
			}
			if _, known := attrSet[attr]; !known {
				logging.Warn("default stat modifier references attribute outside default_attributes", logging.Fields{
					"stat_name": name, "attribute": attr,
				})
			}
			if _, dup := modSeen[attr]; dup {
				logging.Warn("duplicate modifier attribute in default stat; contributions will sum", logging.Fields{
					"stat_name": name, "attribute": attr,
				})
			}
			modSeen[attr] = struct{}{}
			mods = append(mods, game.Modifier{Attribute: attr, Multiplier: m.Multiplier, BaseBonus: m.BaseBonus})
		}
		out = append(out, game.StatDefinition{
			Name:          name,
			BaseValue:     e.BaseValue,
			PerLevelBonus: e.PerLevelBonus,
			Modifiers:     mods,
		})
	}
	return out, nil
}
