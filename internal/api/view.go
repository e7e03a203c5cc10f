package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/view"
)

// ViewHandler exposes the navigation state of the single browser session
type ViewHandler struct {
	view   *view.Controller
	logger *zap.Logger
}

// NewViewHandler creates a ViewHandler
func NewViewHandler(ctrl *view.Controller, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{view: ctrl, logger: logger}
}

func (h *ViewHandler) RegisterRoutes(router *gin.RouterGroup) {
	v := router.Group("/view")
	{
		v.GET("", h.GetState)
		v.POST("/create", h.OpenCreate)
		v.PUT("/draft", h.UpdateDraft)
		v.POST("/submit", h.Submit)
		v.POST("/back", h.Back)
		v.POST("/select/:id", h.Select)
		v.PUT("/filter", h.SetFilter)
		v.POST("/delete", h.DeleteSelected)
	}
}

func (h *ViewHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.view.Snapshot())
}

func (h *ViewHandler) GetState(c *gin.Context) {
	h.state(c)
}

func (h *ViewHandler) OpenCreate(c *gin.Context) {
	if err := h.view.OpenCreate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.state(c)
}

func (h *ViewHandler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var category model.Category
	if req.Category != nil {
		parsed, err := model.ParseCategory(*req.Category)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		category = parsed
	}

	err := h.view.UpdateDraft(func(d *model.NewRecipe) {
		if req.Category != nil {
			d.Category = category
		}
		if req.Name != nil {
			d.Name = *req.Name
		}
		if req.Ingredients != nil {
			d.Ingredients = *req.Ingredients
		}
		if req.Instructions != nil {
			d.Instructions = *req.Instructions
		}
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.state(c)
}

func (h *ViewHandler) Submit(c *gin.Context) {
	r, err := h.view.Submit(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{Recipe: r, View: h.view.Snapshot()})
}

func (h *ViewHandler) Back(c *gin.Context) {
	h.view.Back()
	h.state(c)
}

func (h *ViewHandler) Select(c *gin.Context) {
	if err := h.view.Select(c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.state(c)
}

func (h *ViewHandler) SetFilter(c *gin.Context) {
	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	filter, err := model.ParseFilter(req.Filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.view.SetFilter(filter); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.state(c)
}

// DeleteSelected deletes the recipe on the Detail screen. The delete prompt
// is answered by ?confirm=true or the X-Confirm header.
func (h *ViewHandler) DeleteSelected(c *gin.Context) {
	deleted, err := h.view.DeleteSelected(c.Request.Context(), view.Answer(confirmed(c)))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if !deleted {
		confirmationRequired(c)
		return
	}
	h.state(c)
}
