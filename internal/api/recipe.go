package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/view"
)

// RecipeHandler serves the recipe collection
type RecipeHandler struct {
	store  *service.RecipeStore
	view   *view.Controller
	logger *zap.Logger
}

// NewRecipeHandler creates a RecipeHandler. Deletes are reported to ctrl so
// its selection never points at a missing recipe.
func NewRecipeHandler(store *service.RecipeStore, ctrl *view.Controller, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{store: store, view: ctrl, logger: logger}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": model.Categories(),
		"filters":    model.FilterLabels(),
	})
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter, err := model.ParseFilter(c.Query("category"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, RecipeListResponse{Recipes: h.store.FilterByCategory(filter)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	r, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, RecipeResponse{Recipe: r})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	in := model.NewRecipe{Name: req.Name, Ingredients: req.Ingredients, Instructions: req.Instructions}
	if req.Category != "" {
		category, err := model.ParseCategory(req.Category)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		in.Category = category
	}

	r, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, RecipeResponse{Recipe: r})
}

// DeleteRecipe requires ?confirm=true or an X-Confirm: true header.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if !confirmed(c) {
		confirmationRequired(c)
		return
	}

	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.view.Forget(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

// confirmed reads the user's answer to the delete prompt from the request
func confirmed(c *gin.Context) bool {
	v := c.Query("confirm")
	if v == "" {
		v = c.GetHeader("X-Confirm")
	}
	yes, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && yes
}
