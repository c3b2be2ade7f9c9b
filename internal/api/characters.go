package api

import (
	"net/http"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateCharacterPayload struct {
	Name           string               `json:"name"`
	CharacterClass string               `json:"character_class"`
	Level          int                  `json:"level"`
	BaseAttributes game.AttributeValues `json:"base_attributes"`
}

// CreateCharacter adds a character with its stats computed on creation.
func (h *ProjectHandler) CreateCharacter(c *gin.Context) {
	var req CreateCharacterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	ch, err := service.CreateCharacter(h.repo, c.Param("projectID"), service.CreateCharacterRequest{
		Name:           req.Name,
		CharacterClass: req.CharacterClass,
		Level:          req.Level,
		BaseAttributes: req.BaseAttributes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, ch)
}

type SetLevelPayload struct {
	Level int `json:"level"`
}

// SetCharacterLevel changes a character's level, rejecting values below the
// minimum with the stored state untouched.
func (h *ProjectHandler) SetCharacterLevel(c *gin.Context) {
	var req SetLevelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	ch, err := service.SetCharacterLevel(h.repo, c.Param("projectID"), c.Param("characterID"), req.Level)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, ch)
}

type SetAttributePayload struct {
	Value float64 `json:"value"`
}

// SetCharacterAttribute writes one raw attribute value.
func (h *ProjectHandler) SetCharacterAttribute(c *gin.Context) {
	var req SetAttributePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	ch, err := service.SetCharacterAttribute(h.repo, c.Param("projectID"), c.Param("characterID"), c.Param("attribute"), req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, ch)
}

// DeleteCharacter removes a character from its project.
func (h *ProjectHandler) DeleteCharacter(c *gin.Context) {
	if err := service.DeleteCharacter(h.repo, c.Param("projectID"), c.Param("characterID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "deleted"})
}

func respondEntity(c *gin.Context, status int, v interface{}) {
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeProject})
		return
	}
	c.JSON(status, out)
}
