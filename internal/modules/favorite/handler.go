package favorite

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
		recipes.POST("/:id/favorite", h.Add)
		recipes.DELETE("/:id/favorite", h.Remove)
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
		case errors.Is(err, ErrAlreadyFavorited):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrRecipeNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
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
		case errors.Is(err, ErrRecipeNotFound), errors.Is(err, ErrNotFavorited):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
