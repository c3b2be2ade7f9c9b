package api

import (
	"net/http"

	"github.com/ericogr/game-balance/internal/constants"

	"github.com/gin-gonic/gin"
)

// GetBalanceComparison returns a character and an enemy side by side for
// balance review. Pure read: the cached stats are already fresh.
func (h *ProjectHandler) GetBalanceComparison(c *gin.Context) {
	p, err := h.repo.GetProjectByPublicID(c.Param("projectID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProjectNotFound})
		return
	}
	ch := p.CharacterByPublicID(c.Param("characterID"))
	if ch == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		return
	}
	e := p.EnemyByPublicID(c.Param("enemyID"))
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEnemyNotFound})
		return
	}

	out, err := MarshalIntoSnakeTimestamps(gin.H{
		"character": ch,
		"enemy":     e,
		"comparison": gin.H{
			"character_level": ch.Level,
			"enemy_level":     e.Level,
			"character_stats": ch.CalculatedStats,
			"enemy_stats":     e.CalculatedStats,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeProject})
		return
	}
	c.JSON(http.StatusOK, out)
}
