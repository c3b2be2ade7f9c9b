package service

import (
	"errors"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/keys"
	"github.com/ericogr/game-balance/internal/logging"
	"github.com/ericogr/game-balance/internal/storage"

	"github.com/google/uuid"
)

// ProjectRepo is the minimal repository interface required by the service
// layer. Using a small interface simplifies testing.
type ProjectRepo interface {
	CreateProject(p *game.Project) error
	GetProjectByPublicID(publicID string) (*game.Project, error)
	UpdateProject(p *game.Project) error
	DeleteCharacter(id uint) error
	DeleteEnemy(id uint) error
}

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrEnemyNotFound     = errors.New("enemy not found")
	ErrStatNotFound      = errors.New("stat definition not found")
	ErrStatExists        = errors.New("stat definition already exists")
	ErrLevelOutOfRange   = errors.New("level must be at least 1")
	ErrNameRequired      = errors.New("name is required")
	ErrAttributeRequired = errors.New("attribute name is required")
)

// loadProject fetches a project and maps the storage not-found error onto
// the service sentinel.
func loadProject(repo ProjectRepo, publicID string) (*game.Project, error) {
	p, err := repo.GetProjectByPublicID(publicID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreateProject creates a project seeded with the configured default
// attribute set and stat definitions. No entities exist yet, so nothing
// needs recalculation.
func CreateProject(repo ProjectRepo, name, description string, defaultAttributes []string, defaultStats []game.StatDefinition) (*game.Project, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	defs := make([]game.StatDefinition, 0, len(defaultStats))
	for _, d := range defaultStats {
		defs = append(defs, game.StatDefinition{
			Name:          d.Name,
			BaseValue:     d.BaseValue,
			PerLevelBonus: d.PerLevelBonus,
			Modifiers:     append([]game.Modifier(nil), d.Modifiers...),
		})
	}

	p := &game.Project{
		PublicID:        uuid.NewString(),
		Name:            name,
		Description:     description,
		Attributes:      keys.CanonicalNames(defaultAttributes),
		StatDefinitions: defs,
	}
	if err := repo.CreateProject(p); err != nil {
		return nil, err
	}
	logging.Info("project created", logging.Fields{constants.LogFieldProjectID: p.PublicID, "name": p.Name})
	return p, nil
}

// UpdateProjectAttributes replaces the project's attribute set. The set
// change alone triggers no recalculation: removed attributes keep degrading
// to zero contributions inside formulas, and added ones default to 0 until
// an entity receives a value. Stat definitions left dangling are tolerated
// and logged so the designer can finish the edit.
func UpdateProjectAttributes(repo ProjectRepo, projectID string, attributes []string) (*game.Project, error) {
	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}

	p.Attributes = keys.CanonicalNames(attributes)
	warnDanglingModifiers(p)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

// warnDanglingModifiers logs every modifier that references an attribute
// outside the project's attribute set. Dangling references are a tolerated
// mid-edit state, never an error.
func warnDanglingModifiers(p *game.Project) {
	for i := range p.StatDefinitions {
		def := &p.StatDefinitions[i]
		for _, m := range def.Modifiers {
			if !p.HasAttribute(m.Attribute) {
				logging.Warn("modifier references attribute outside the project attribute set", logging.Fields{
					constants.LogFieldProjectID: p.PublicID,
					constants.LogFieldStatName:  def.Name,
					constants.LogFieldAttribute: m.Attribute,
				})
			}
		}
	}
}
