package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sales_analytics/internal/application/analytics"
	"sales_analytics/internal/domain/order"
)

type OrderHandler struct {
	svc *analytics.Service
}

func NewOrderHandler(svc *analytics.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.svc.ListOrders()})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	payload := decodePayload(c.Request.Body)

	view, err := h.svc.CreateOrder(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// decodePayload returns the body as a JSON object. Anything that is not an
// object decodes to an empty payload, which then fails on its first field.
func decodePayload(body io.Reader) map[string]any {
	payload := map[string]any{}
	if body == nil {
		return payload
	}
	raw, err := io.ReadAll(body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return payload
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded map[string]any
	if err := dec.Decode(&decoded); err != nil || decoded == nil {
		return payload
	}
	return decoded
}
