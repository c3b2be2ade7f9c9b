package storage

import (
	"errors"

	"github.com/ericogr/game-balance/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateProject(p *game.Project) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) GetProjectByPublicID(publicID string) (*game.Project, error) {
	var p game.Project
	err := r.db.
		Preload("StatDefinitions").
		Preload("Characters").
		Preload("Enemies").
		Where("public_id = ?", publicID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) ListProjects() ([]game.Project, error) {
	var projects []game.Project
	err := r.db.
		Preload("StatDefinitions").
		Preload("Characters").
		Preload("Enemies").
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject saves the whole aggregate in one transaction. The revision
// check detects a concurrent writer between this caller's load and save; in
// that case nothing is written and ErrConflict is returned.
func (r *sqliteRepository) UpdateProject(p *game.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var stored game.Project
		if err := tx.Select("id", "revision").First(&stored, p.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if stored.Revision != p.Revision {
			return ErrConflict
		}
		p.Revision++
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

func (r *sqliteRepository) DeleteCharacter(id uint) error {
	return r.db.Delete(&game.Character{}, id).Error
}

func (r *sqliteRepository) DeleteEnemy(id uint) error {
	return r.db.Delete(&game.Enemy{}, id).Error
}
