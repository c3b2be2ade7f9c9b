// Package engine implements the stat derivation core: a pure formula
// evaluator plus the recalculation pass that keeps every entity's cached
// stats consistent with the project's current definitions. Nothing in this
// package performs I/O or holds state; callers load a project, let the
// engine rewrite the caches in memory and persist the result.
package engine

import (
	"github.com/ericogr/game-balance/internal/game"
)

// Evaluate computes a single stat value from raw inputs:
//
//	base_value + Σ(attr*multiplier + base_bonus) + (level-1)*per_level_bonus
//
// A modifier whose attribute is absent from attrs contributes its base bonus
// only (the attribute value resolves to 0). This is deliberate: deleting an
// attribute from a project must not corrupt formulas that still reference it.
// Levels below game.MinLevel are rejected upstream and never reach this
// function.
func Evaluate(def game.StatDefinition, attrs game.AttributeValues, level int) float64 {
	result := def.BaseValue
	for _, m := range def.Modifiers {
		result += attrs[m.Attribute]*m.Multiplier + m.BaseBonus
	}
	result += float64(level-game.MinLevel) * def.PerLevelBonus
	return result
}

// CalculateStats evaluates every definition against one entity's inputs and
// returns a freshly built stat map. The returned map is always a new value so
// the caller can swap it in atomically.
func CalculateStats(defs []game.StatDefinition, attrs game.AttributeValues, level int) game.StatValues {
	calculated := make(game.StatValues, len(defs))
	for _, def := range defs {
		calculated[def.Name] = Evaluate(def, attrs, level)
	}
	return calculated
}
