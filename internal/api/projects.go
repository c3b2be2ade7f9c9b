package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/dedupe"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateProjectPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProject creates a project seeded with the configured default schema.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrProjectNameRequired})
		return
	}
	if utf8.RuneCountInString(req.Name) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrProjectNameExceeds})
		return
	}
	if utf8.RuneCountInString(req.Description) > 256 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDescriptionExceeds})
		return
	}

	p, err := service.CreateProject(h.repo, req.Name, req.Description, h.defaultAttributes, h.defaultStats)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondProject(c, http.StatusCreated, p)
}

// ListProjects returns every project with entities and their cached stats.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	v, err, _ := dedupe.ListGroup.Do("list", func() (interface{}, error) {
		return h.repo.ListProjects()
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProjects})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeProject})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProject returns one project by public id. Reads never recompute:
// the cached stats are guaranteed fresh at every successful mutation's
// return. Concurrent identical loads are collapsed via singleflight since
// the client refetches the whole project after each mutation.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := c.Param("projectID")
	v, err, _ := dedupe.ProjectGroup.Do(projectID, func() (interface{}, error) {
		return h.repo.GetProjectByPublicID(projectID)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProjectNotFound})
		return
	}
	respondProject(c, http.StatusOK, v.(*game.Project))
}

type UpdateAttributesPayload struct {
	Attributes []string `json:"attributes"`
}

// UpdateAttributes replaces the project's attribute set. No recalculation
// happens from the set change alone.
func (h *ProjectHandler) UpdateAttributes(c *gin.Context) {
	var req UpdateAttributesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.UpdateProjectAttributes(h.repo, c.Param("projectID"), req.Attributes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondProject(c, http.StatusOK, p)
}

func respondProject(c *gin.Context, status int, p *game.Project) {
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeProject})
		return
	}
	c.JSON(status, out)
}
