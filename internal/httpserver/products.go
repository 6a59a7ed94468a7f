package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-menu/internal/domain"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("category"), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func setAvailabilityHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req availabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available flag required"})
			return
		}
		err := svc.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update availability"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
