package api

import (
	"net/http"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/service"

	"github.com/gin-gonic/gin"
)

type StatDefinitionPayload struct {
	Name          string          `json:"name"`
	BaseValue     float64         `json:"base_value"`
	PerLevelBonus float64         `json:"per_level_bonus"`
	Modifiers     []game.Modifier `json:"modifiers"`
}

// CreateStatDefinition adds a stat formula and computes its value for every
// entity before returning.
func (h *ProjectHandler) CreateStatDefinition(c *gin.Context) {
	var req StatDefinitionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrStatNameRequired})
		return
	}
	def, err := service.CreateStatDefinition(h.repo, c.Param("projectID"), service.StatDefinitionRequest{
		Name:          req.Name,
		BaseValue:     req.BaseValue,
		PerLevelBonus: req.PerLevelBonus,
		Modifiers:     req.Modifiers,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, def)
}

// UpdateStatDefinition replaces a stat formula and recomputes that one stat
// across every character and enemy. Returns the full project so the client
// sees every refreshed cache in one response.
func (h *ProjectHandler) UpdateStatDefinition(c *gin.Context) {
	var req StatDefinitionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.UpdateStatDefinition(h.repo, c.Param("projectID"), c.Param("statName"), service.StatDefinitionRequest{
		Name:          req.Name,
		BaseValue:     req.BaseValue,
		PerLevelBonus: req.PerLevelBonus,
		Modifiers:     req.Modifiers,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondProject(c, http.StatusOK, p)
}

// ListStatDefinitions returns the project's stat formulas.
func (h *ProjectHandler) ListStatDefinitions(c *gin.Context) {
	p, err := h.repo.GetProjectByPublicID(c.Param("projectID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProjectNotFound})
		return
	}
	respondEntity(c, http.StatusOK, p.StatDefinitions)
}
