package storage

import (
	"errors"

	"github.com/ericogr/game-balance/internal/game"
)

var (
	// ErrNotFound is returned when a project does not exist.
	ErrNotFound = errors.New("project not found")
	// ErrConflict is returned when a save observes a revision other than
	// the one the caller loaded. The core signals this upward and never
	// retries; retry policy belongs to the caller.
	ErrConflict = errors.New("project was modified concurrently")
)

// Repository is the persistence boundary for the balance core: whole-project
// load and save with project-level atomicity, plus targeted entity removal.
type Repository interface {
	CreateProject(p *game.Project) error
	// GetProjectByPublicID loads a project with all owned collections
	// (stat definitions, characters, enemies) preloaded.
	GetProjectByPublicID(publicID string) (*game.Project, error)
	ListProjects() ([]game.Project, error)
	// UpdateProject persists the full aggregate. Fails with ErrConflict
	// when the stored revision no longer matches the loaded one.
	UpdateProject(p *game.Project) error
	DeleteCharacter(id uint) error
	DeleteEnemy(id uint) error
}
