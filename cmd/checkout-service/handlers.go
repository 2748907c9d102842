package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ord "github.com/nexmart/checkout/internal/order"
)

// buyerIDHeader carries the authenticated buyer identity, set by the edge
// that terminates authentication. It is never taken from the request body.
const buyerIDHeader = "X-Buyer-ID"

// createOrderHandler runs the checkout transaction.
// @Summary Create an order
// @Accept json
// @Produce json
// @Param request body order.CreateOrderRequest true "checkout payload"
// @Success 201 {object} order.CreateOrderResponse
// @Router /orders [post]
func createOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetHeader(buyerIDHeader)
		if buyerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing buyer identity"})
			return
		}
		var req ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		o, items, err := svc.Checkout(c.Request.Context(), buyerID, req)
		if err != nil {
			switch {
			case errors.Is(err, ord.ErrEmptyOrder),
				errors.Is(err, ord.ErrInvalidQuantity),
				errors.Is(err, ord.ErrInvalidPayment),
				errors.Is(err, ord.ErrProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ord.ErrSequenceContention):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "order code contention, please retry"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "create order failed"})
			}
			return
		}
		c.JSON(http.StatusCreated, ord.CreateOrderResponse{Order: *o, Items: items})
	}
}

// @Summary Get an order with its line items
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.CreateOrderResponse
// @Router /orders/{id} [get]
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, ord.CreateOrderResponse{Order: *o, Items: items})
	}
}

// @Summary Get an order's line items
// @Produce json
// @Param id path string true "order id"
// @Success 200 {array} order.LineItem
// @Router /orders/{id}/items [get]
func getOrderItemsHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.GetItems(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// @Summary List a buyer's orders
// @Produce json
// @Param buyer_id path string true "buyer id"
// @Success 200 {array} order.Order
// @Router /orders/buyer/{buyer_id} [get]
func listOrdersByBuyerHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		orders, err := repo.ListByBuyer(c.Request.Context(), c.Param("buyer_id"), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// updateOrderStatusHandler is the fulfillment collaborator's surface.
// @Summary Update fulfillment state
// @Accept json
// @Param id path string true "order id"
// @Param request body order.UpdateStatusRequest true "fulfillment update"
// @Success 200 {object} map[string]string
// @Router /orders/{id}/status [put]
func updateOrderStatusHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if !ord.ValidDeliveryStatus(req.DeliveryStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery status"})
			return
		}
		var deliveryDate *time.Time
		if req.DeliveryDate != nil {
			t, err := time.Parse(time.RFC3339, *req.DeliveryDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery date"})
				return
			}
			deliveryDate = &t
		}
		err := repo.UpdateFulfillment(c.Request.Context(), c.Param("id"),
			ord.DeliveryStatus(req.DeliveryStatus), deliveryDate, req.PaymentStatus)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.DeliveryStatus})
	}
}

// resendInvoiceHandler re-enqueues the invoice job for a committed order.
// Rendering is idempotent, so a resend never mutates order state.
// @Summary Resend the invoice email
// @Param id path string true "order id"
// @Success 202 {object} map[string]string
// @Router /orders/{id}/invoice/resend [post]
func resendInvoiceHandler(repo ord.Repository, enqueue func(ctx context.Context, orderID, code string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, _, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err := enqueue(c.Request.Context(), o.ID, o.Code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue failed"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"code": o.Code})
	}
}
