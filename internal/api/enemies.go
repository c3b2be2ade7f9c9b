package api

import (
	"net/http"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateEnemyPayload struct {
	Name      string               `json:"name"`
	EnemyType string               `json:"enemy_type"`
	Level     int                  `json:"level"`
	BaseStats game.AttributeValues `json:"base_stats"`
}

// CreateEnemy adds an enemy; its stats derive through the same pipeline as
// characters.
func (h *ProjectHandler) CreateEnemy(c *gin.Context) {
	var req CreateEnemyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	e, err := service.CreateEnemy(h.repo, c.Param("projectID"), service.CreateEnemyRequest{
		Name:      req.Name,
		EnemyType: req.EnemyType,
		Level:     req.Level,
		BaseStats: req.BaseStats,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, e)
}

// SetEnemyLevel changes an enemy's level under the same bound policy as
// characters.
func (h *ProjectHandler) SetEnemyLevel(c *gin.Context) {
	var req SetLevelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	e, err := service.SetEnemyLevel(h.repo, c.Param("projectID"), c.Param("enemyID"), req.Level)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, e)
}

// SetEnemyAttribute writes one raw value on an enemy.
func (h *ProjectHandler) SetEnemyAttribute(c *gin.Context) {
	var req SetAttributePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	e, err := service.SetEnemyAttribute(h.repo, c.Param("projectID"), c.Param("enemyID"), c.Param("attribute"), req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, e)
}

// DeleteEnemy removes an enemy from its project.
func (h *ProjectHandler) DeleteEnemy(c *gin.Context) {
	if err := service.DeleteEnemy(h.repo, c.Param("projectID"), c.Param("enemyID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "deleted"})
}
