package engine

import (
	"errors"

	"github.com/ericogr/game-balance/internal/game"
)

// ErrUnknownStat is returned when a recalculation names a stat that has no
// definition in the project. No cached value is touched in that case.
var ErrUnknownStat = errors.New("stat definition not found")

// RecalculateCharacter rebuilds one character's full stat cache from the
// project's current definitions.
func RecalculateCharacter(p *game.Project, c *game.Character) {
	c.CalculatedStats = CalculateStats(p.StatDefinitions, c.BaseAttributes, c.Level)
}

// RecalculateEnemy rebuilds one enemy's full stat cache. Enemies run through
// the same formulas as characters; BaseStats is their attribute map.
func RecalculateEnemy(p *game.Project, e *game.Enemy) {
	e.CalculatedStats = CalculateStats(p.StatDefinitions, e.BaseStats, e.Level)
}

// RecalculateStat recomputes the named stat for every character and enemy in
// the project, leaving all other cached stats untouched. It fails with
// ErrUnknownStat before modifying anything when the stat has no definition,
// so a failed call never leaves a partially recomputed project behind.
func RecalculateStat(p *game.Project, statName string) error {
	def := p.StatDefinitionByName(statName)
	if def == nil {
		return ErrUnknownStat
	}
	for i := range p.Characters {
		c := &p.Characters[i]
		if c.CalculatedStats == nil {
			c.CalculatedStats = make(game.StatValues, len(p.StatDefinitions))
		}
		c.CalculatedStats[statName] = Evaluate(*def, c.BaseAttributes, c.Level)
	}
	for i := range p.Enemies {
		e := &p.Enemies[i]
		if e.CalculatedStats == nil {
			e.CalculatedStats = make(game.StatValues, len(p.StatDefinitions))
		}
		e.CalculatedStats[statName] = Evaluate(*def, e.BaseStats, e.Level)
	}
	return nil
}

// RecalculateProject rebuilds every entity's full stat cache. Used when a
// change invalidates all stats at once (e.g. a new stat definition was added,
// which must appear in every entity's cache).
func RecalculateProject(p *game.Project) {
	for i := range p.Characters {
		RecalculateCharacter(p, &p.Characters[i])
	}
	for i := range p.Enemies {
		RecalculateEnemy(p, &p.Enemies[i])
	}
}
