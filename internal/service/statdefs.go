package service

import (
	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/engine"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/keys"
	"github.com/ericogr/game-balance/internal/logging"
)

type StatDefinitionRequest struct {
	Name          string
	BaseValue     float64
	PerLevelBonus float64
	Modifiers     []game.Modifier
}

// CreateStatDefinition adds a new stat formula to the project and computes
// its value for every character and enemy, so the new key appears in every
// entity's cache before the call returns.
func CreateStatDefinition(repo ProjectRepo, projectID string, req StatDefinitionRequest) (*game.StatDefinition, error) {
	name := keys.CanonicalName(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}
	if p.StatDefinitionByName(name) != nil {
		return nil, ErrStatExists
	}

	def := game.StatDefinition{
		Name:          name,
		BaseValue:     req.BaseValue,
		PerLevelBonus: req.PerLevelBonus,
		Modifiers:     canonicalModifiers(p, name, req.Modifiers),
	}
	p.StatDefinitions = append(p.StatDefinitions, def)

	if err := engine.RecalculateStat(p, name); err != nil {
		return nil, err
	}
	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	logging.Info("stat definition created", logging.Fields{constants.LogFieldProjectID: p.PublicID, constants.LogFieldStatName: name})
	return p.StatDefinitionByName(name), nil
}

// UpdateStatDefinition replaces an existing stat formula atomically and
// recomputes that one stat for every entity in the project, leaving every
// other cached stat untouched. The stat name is the formula's identity and
// cannot be changed by an update. An unknown name fails with ErrStatNotFound
// and no cached value is modified.
func UpdateStatDefinition(repo ProjectRepo, projectID, statName string, req StatDefinitionRequest) (*game.Project, error) {
	name := keys.CanonicalName(statName)
	if name == "" {
		return nil, ErrNameRequired
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}
	def := p.StatDefinitionByName(name)
	if def == nil {
		return nil, ErrStatNotFound
	}

	def.BaseValue = req.BaseValue
	def.PerLevelBonus = req.PerLevelBonus
	def.Modifiers = canonicalModifiers(p, name, req.Modifiers)

	if err := engine.RecalculateStat(p, name); err != nil {
		return nil, err
	}
	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	logging.Info("stat definition updated", logging.Fields{constants.LogFieldProjectID: p.PublicID, constants.LogFieldStatName: name})
	return p, nil
}

// canonicalModifiers normalizes modifier attribute names and logs references
// that fall outside the project's attribute set. Dangling references and
// duplicate attributes are both tolerated: the former contribute zero, the
// latter sum.
func canonicalModifiers(p *game.Project, statName string, in []game.Modifier) []game.Modifier {
	out := make([]game.Modifier, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, m := range in {
		attr := keys.CanonicalName(m.Attribute)
		if attr == "" {
			continue
		}
		if !p.HasAttribute(attr) {
			logging.Warn("modifier references attribute outside the project attribute set", logging.Fields{
				constants.LogFieldProjectID: p.PublicID, constants.LogFieldStatName: statName, constants.LogFieldAttribute: attr,
			})
		}
		if _, dup := seen[attr]; dup {
			logging.Warn("duplicate modifier attribute; contributions will sum", logging.Fields{
				constants.LogFieldProjectID: p.PublicID, constants.LogFieldStatName: statName, constants.LogFieldAttribute: attr,
			})
		}
		seen[attr] = struct{}{}
		out = append(out, game.Modifier{Attribute: attr, Multiplier: m.Multiplier, BaseBonus: m.BaseBonus})
	}
	return out
}
