package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-menu/internal/domain"
)

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

func cartCountHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": svc.ItemCount()})
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func addCartItemHandler(cart cartService, catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		}

		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			case errors.Is(err, domain.ErrUnavailable):
				c.JSON(http.StatusConflict, gin.H{"error": "product unavailable"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			}
			return
		}

		cart.AddLine(c.Request.Context(), *product, quantity)
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func setCartQuantityHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		svc.SetQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.RemoveLine(c.Request.Context(), c.Param("productId"))
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

type tableRequest struct {
	TableNumber string `json:"tableNumber"`
}

func setTableHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tableNumber required"})
			return
		}
		svc.SetTableNumber(c.Request.Context(), req.TableNumber)
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

func clearCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Clear(c.Request.Context())
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}
