package service

import (
	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/engine"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/keys"
	"github.com/ericogr/game-balance/internal/logging"

	"github.com/google/uuid"
)

type CreateCharacterRequest struct {
	Name           string
	CharacterClass string
	Level          int
	BaseAttributes game.AttributeValues
}

// CreateCharacter adds a character to a project with its stat cache computed
// immediately, so no caller ever observes an empty or stale cache. A zero
// level means "not provided" and defaults to the minimum.
func CreateCharacter(repo ProjectRepo, projectID string, req CreateCharacterRequest) (*game.Character, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Level == 0 {
		req.Level = game.MinLevel
	}
	if req.Level < game.MinLevel {
		return nil, ErrLevelOutOfRange
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}

	attrs := canonicalValues(p, req.BaseAttributes)
	ch := game.Character{
		PublicID:        uuid.NewString(),
		Name:            req.Name,
		CharacterClass:  req.CharacterClass,
		Level:           req.Level,
		BaseAttributes:  attrs,
		CalculatedStats: engine.CalculateStats(p.StatDefinitions, attrs, req.Level),
	}
	p.Characters = append(p.Characters, ch)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	created := &p.Characters[len(p.Characters)-1]
	logging.Info("character created", logging.Fields{constants.LogFieldProjectID: p.PublicID, constants.LogFieldCharacterID: created.PublicID})
	return created, nil
}

// SetCharacterLevel changes a character's level and synchronously rebuilds
// its stat cache. Levels below the minimum fail before any state is read or
// written, so the stored level and cache stay exactly as they were.
func SetCharacterLevel(repo ProjectRepo, projectID, characterID string, level int) (*game.Character, error) {
	if level < game.MinLevel {
		return nil, ErrLevelOutOfRange
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}
	ch := p.CharacterByPublicID(characterID)
	if ch == nil {
		return nil, ErrCharacterNotFound
	}

	ch.Level = level
	engine.RecalculateCharacter(p, ch)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	return ch, nil
}

// SetCharacterAttribute writes one raw attribute value and rebuilds the
// character's stat cache. Writing an attribute outside the project's set is
// tolerated (the designer may be mid-edit of the attribute list) and logged.
func SetCharacterAttribute(repo ProjectRepo, projectID, characterID, attribute string, value float64) (*game.Character, error) {
	attr := keys.CanonicalName(attribute)
	if attr == "" {
		return nil, ErrAttributeRequired
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}
	ch := p.CharacterByPublicID(characterID)
	if ch == nil {
		return nil, ErrCharacterNotFound
	}
	if !p.HasAttribute(attr) {
		logging.Warn("attribute write outside the project attribute set", logging.Fields{
			constants.LogFieldProjectID: p.PublicID, constants.LogFieldCharacterID: ch.PublicID, constants.LogFieldAttribute: attr,
		})
	}

	if ch.BaseAttributes == nil {
		ch.BaseAttributes = make(game.AttributeValues, 1)
	}
	ch.BaseAttributes[attr] = value
	engine.RecalculateCharacter(p, ch)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	return ch, nil
}

// DeleteCharacter removes a character. Nothing else references it, so there
// is no cascading recalculation.
func DeleteCharacter(repo ProjectRepo, projectID, characterID string) error {
	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return err
	}
	ch := p.CharacterByPublicID(characterID)
	if ch == nil {
		return ErrCharacterNotFound
	}
	return repo.DeleteCharacter(ch.ID)
}

// canonicalValues normalizes the attribute keys of a raw value map and logs
// names that fall outside the project's attribute set.
func canonicalValues(p *game.Project, in game.AttributeValues) game.AttributeValues {
	out := make(game.AttributeValues, len(in))
	for name, v := range in {
		attr := keys.CanonicalName(name)
		if attr == "" {
			continue
		}
		if !p.HasAttribute(attr) {
			logging.Warn("attribute value outside the project attribute set", logging.Fields{
				constants.LogFieldProjectID: p.PublicID, constants.LogFieldAttribute: attr,
			})
		}
		out[attr] = v
	}
	return out
}
