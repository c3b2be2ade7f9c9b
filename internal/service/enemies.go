package service

import (
	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/engine"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/keys"
	"github.com/ericogr/game-balance/internal/logging"

	"github.com/google/uuid"
)

type CreateEnemyRequest struct {
	Name      string
	EnemyType string
	Level     int
	BaseStats game.AttributeValues
}

// CreateEnemy adds an enemy to a project. Enemies run through the same stat
// derivation as characters, so the cache is computed on creation the same
// way.
func CreateEnemy(repo ProjectRepo, projectID string, req CreateEnemyRequest) (*game.Enemy, error) {
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

	attrs := canonicalValues(p, req.BaseStats)
	e := game.Enemy{
		PublicID:        uuid.NewString(),
		Name:            req.Name,
		EnemyType:       req.EnemyType,
		Level:           req.Level,
		BaseStats:       attrs,
		CalculatedStats: engine.CalculateStats(p.StatDefinitions, attrs, req.Level),
	}
	p.Enemies = append(p.Enemies, e)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	created := &p.Enemies[len(p.Enemies)-1]
	logging.Info("enemy created", logging.Fields{constants.LogFieldProjectID: p.PublicID, constants.LogFieldEnemyID: created.PublicID})
	return created, nil
}

// SetEnemyLevel changes an enemy's level and rebuilds its stat cache.
// Same bound policy as characters: level below the minimum fails with
// nothing read or written.
func SetEnemyLevel(repo ProjectRepo, projectID, enemyID string, level int) (*game.Enemy, error) {
	if level < game.MinLevel {
		return nil, ErrLevelOutOfRange
	}

	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return nil, err
	}
	e := p.EnemyByPublicID(enemyID)
	if e == nil {
		return nil, ErrEnemyNotFound
	}

	e.Level = level
	engine.RecalculateEnemy(p, e)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	return e, nil
}

// SetEnemyAttribute writes one raw value on an enemy and rebuilds its cache.
func SetEnemyAttribute(repo ProjectRepo, projectID, enemyID, attribute string, value float64) (*game.Enemy, error) {
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
	e := p.EnemyByPublicID(enemyID)
	if e == nil {
		return nil, ErrEnemyNotFound
	}
	if !p.HasAttribute(attr) {
		logging.Warn("attribute write outside the project attribute set", logging.Fields{
			constants.LogFieldProjectID: p.PublicID, constants.LogFieldEnemyID: e.PublicID, constants.LogFieldAttribute: attr,
		})
	}

	if e.BaseStats == nil {
		e.BaseStats = make(game.AttributeValues, 1)
	}
	e.BaseStats[attr] = value
	engine.RecalculateEnemy(p, e)

	if err := repo.UpdateProject(p); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEnemy removes an enemy with no cascading effects.
func DeleteEnemy(repo ProjectRepo, projectID, enemyID string) error {
	unlock := lockProject(projectID)
	defer unlock()

	p, err := loadProject(repo, projectID)
	if err != nil {
		return err
	}
	e := p.EnemyByPublicID(enemyID)
	if e == nil {
		return ErrEnemyNotFound
	}
	return repo.DeleteEnemy(e.ID)
}
