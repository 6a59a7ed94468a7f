package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-menu/internal/checkout"
)

type checkoutRequest struct {
	CustomerName string `json:"customerName"`
	Notes        string `json:"notes"`
}

func checkoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// An empty body is fine: both fields are optional.
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		in := checkout.Input{
			CustomerName: req.CustomerName,
			Notes:        req.Notes,
		}
		// A signed-in waiter's name is the fallback when the form left the
		// customer name blank.
		if in.CustomerName == "" {
			if session, ok := currentSession(c); ok {
				in.CustomerName = session.Name
			}
		}

		order, err := svc.Checkout(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrMissingTable):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrCheckoutInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "order submission failed"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
