package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tailor_shop/internal/models"
	"tailor_shop/internal/orderform"
	"tailor_shop/internal/services"
)

type APIHandler struct {
	customerService services.CustomerService
	orderService    services.OrderService
}

func NewAPIHandler(customerService services.CustomerService, orderService services.OrderService) *APIHandler {
	return &APIHandler{
		customerService: customerService,
		orderService:    orderService,
	}
}

type customerRequest struct {
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	ShirtMeasurements *string `json:"shirt_measurements"`
	PantsMeasurements *string `json:"pants_measurements"`
	OtherMeasurements *string `json:"other_measurements"`
}

// Customer endpoints

func (h *APIHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.SearchCustomers(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *APIHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer := models.Customer{
		Name:              req.Name,
		Phone:             req.Phone,
		ShirtMeasurements: req.ShirtMeasurements,
		PantsMeasurements: req.PantsMeasurements,
		OtherMeasurements: req.OtherMeasurements,
	}

	if err := h.customerService.CreateCustomer(&customer); err != nil {
		var dup *services.DuplicateCustomerError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "This customer already exists",
				"existing": dup.Existing,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *APIHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.ShirtMeasurements = req.ShirtMeasurements
	existing.PantsMeasurements = req.PantsMeasurements
	existing.OtherMeasurements = req.OtherMeasurements

	if err := h.customerService.UpdateCustomer(existing); err != nil {
		var dup *services.DuplicateCustomerError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "This customer already exists",
				"existing": dup.Existing,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customer"})
		return
	}

	c.JSON(http.StatusOK, existing)
}

func (h *APIHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *APIHandler) ListCustomerOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Order endpoints

type orderItemRequest struct {
	ItemType string  `json:"item_type" binding:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

type orderRequest struct {
	CustomerID    uint               `json:"customer_id"`
	DueDate       string             `json:"due_date"`
	PaymentStatus string             `json:"payment_status"`
	AmountPaid    float64            `json:"amount_paid"`
	Notes         string             `json:"notes"`
	Items         []orderItemRequest `json:"items"`
}

// buildDraft replays the request through the order form engine so that
// the stored total is always recomputed server-side and every numeric
// field is clamped. Items first, then the payment fields: the status
// edit runs first and, when it leaves the amount open (partial or no
// status sent), the amount edit follows and derives the status itself.
func buildDraft(req *orderRequest) *orderform.Draft {
	draft := orderform.NewDraft()

	if req.DueDate != "" {
		if due, err := time.Parse("2006-01-02", req.DueDate); err == nil {
			draft.DueDate = due
		}
	}
	draft.Notes = req.Notes

	for _, item := range req.Items {
		for i, line := range draft.Lines {
			if string(line.Kind) != item.ItemType {
				continue
			}
			draft.SetItemQuantity(i, item.Quantity)
			draft.SetItemPrice(i, item.Price)
			if item.Status != "" {
				draft.SetItemStatus(i, models.OrderItemStatus(item.Status))
			}
			break
		}
	}

	switch models.PaymentStatus(req.PaymentStatus) {
	case models.PaymentPaid, models.PaymentUnpaid:
		draft.SetPaymentStatus(models.PaymentStatus(req.PaymentStatus))
	case models.PaymentPartial:
		draft.SetPaymentStatus(models.PaymentPartial)
		draft.SetAmountPaid(req.AmountPaid)
	default:
		draft.SetAmountPaid(req.AmountPaid)
	}

	return draft
}

func (h *APIHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.CustomerID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	order, err := h.orderService.CreateOrder(req.CustomerID, buildDraft(&req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *APIHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateOrder(id, buildDraft(&req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

type orderFormLine struct {
	ItemType string  `json:"item_type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

type orderFormResponse struct {
	Lines         []orderFormLine `json:"lines"`
	DueDate       string          `json:"due_date"`
	PaymentStatus string          `json:"payment_status"`
	AmountPaid    float64         `json:"amount_paid"`
	TotalAmount   float64         `json:"total_amount"`
	AmountPending float64         `json:"amount_pending"`
	Notes         string          `json:"notes"`
}

// GetOrderForm returns the edit-form prefill for an order: one line per
// garment kind, with kinds the order has no row for zeroed out, plus the
// derived totals the form displays.
func (h *APIHandler) GetOrderForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	draft := orderform.FromOrder(order)
	resp := orderFormResponse{
		DueDate:       draft.DueDate.Format("2006-01-02"),
		PaymentStatus: string(draft.PaymentStatus),
		AmountPaid:    draft.AmountPaid,
		TotalAmount:   draft.Total(),
		AmountPending: draft.Pending(),
		Notes:         draft.Notes,
	}
	for _, line := range draft.Lines {
		resp.Lines = append(resp.Lines, orderFormLine{
			ItemType: string(line.Kind),
			Quantity: line.Quantity,
			Price:    line.Price,
			Status:   string(line.Status),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *APIHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
