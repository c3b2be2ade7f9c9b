package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/service"
	"github.com/ericogr/game-balance/internal/storage"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service and storage sentinel errors onto HTTP
// status codes with the shared error strings. Unknown errors become a 500
// without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProjectNotFound})
	case errors.Is(err, service.ErrCharacterNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
	case errors.Is(err, service.ErrEnemyNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEnemyNotFound})
	case errors.Is(err, service.ErrStatNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrStatNotFound})
	case errors.Is(err, service.ErrStatExists):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrStatAlreadyExists})
	case errors.Is(err, service.ErrLevelOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrLevelTooLow})
	case errors.Is(err, service.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrEntityNameRequired})
	case errors.Is(err, service.ErrAttributeRequired):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrAttributeRequired})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrProjectConflict})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateProject})
	}
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt, DeletedAt) to snake_case so the frontend receives a
// consistent contract.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for camel, snake := range map[string]string{
			"CreatedAt": "created_at",
			"UpdatedAt": "updated_at",
			"DeletedAt": "deleted_at",
		} {
			if val, ok := vv[camel]; ok {
				vv[snake] = val
				delete(vv, camel)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, decodes it
// back into an interface{} and normalizes timestamp keys. Used by every
// handler that returns gorm models.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}
