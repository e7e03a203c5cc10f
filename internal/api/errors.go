package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/view"
)

// writeError maps domain errors to HTTP responses
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		verr *service.ValidationError
		werr *service.StorageWriteError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: view.MissingFieldsMsg, Fields: verr.Fields})
	case errors.Is(err, model.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, view.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipe not found"})
	case errors.Is(err, view.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &werr):
		logger.Error("Storage write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save recipes"})
	default:
		logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
	}
}

func confirmationRequired(c *gin.Context) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: "confirmation required", Prompt: view.DeletePrompt})
}
