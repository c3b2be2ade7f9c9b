package api

import (
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/storage"
)

// ProjectHandler groups all project-related HTTP handlers.
type ProjectHandler struct {
	repo storage.Repository
	// Seed data applied to every new project, loaded from the config file.
	defaultAttributes []string
	defaultStats      []game.StatDefinition
}

// NewProjectHandler creates a ProjectHandler with the given repository and
// the configured default schema for new projects.
func NewProjectHandler(repo storage.Repository, defaultAttributes []string, defaultStats []game.StatDefinition) *ProjectHandler {
	return &ProjectHandler{repo: repo, defaultAttributes: defaultAttributes, defaultStats: defaultStats}
}
