package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("/download_shopping_cart", h.Download)
		recipes.POST("/:id/shopping_cart", h.Add)
		recipes.DELETE("/:id/shopping_cart", h.Remove)
	}
}

func (h *Handler) Add(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
		return
	}

	recipe, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInCart):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrRecipeNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add to shopping cart")
		}
		return
	}

	response.Success(c, http.StatusCreated, recipe)
}

func (h *Handler) Remove(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
		return
	}

	err = h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecipeNotFound), errors.Is(err, ErrNotInCart):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove from shopping cart")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Download(c *gin.Context) {
	report, err := h.service.BuildShoppingList(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build shopping list")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ReportFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}
