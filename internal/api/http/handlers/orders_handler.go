package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// OrderErrors is the failure triage for order endpoints. Orders have no unique fields.
var OrderErrors = apperrors.Translator{Resource: "Order"}

// OrdersHandler serves /api/order.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler wires the order service.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /api/order/add. The order belongs to the authenticated user.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Access Denied")
	}
	var req dto.OrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	order, err := h.orders.Create(c.UserContext(), identity.SubjectID, service.OrderInput{
		OrderItems:      req.OrderItems,
		ShippingAddress: deref(req.ShippingAddress),
		PaymentMethod:   deref(req.PaymentMethod),
		TotalPrice:      deref(req.TotalPrice),
	})
	if err != nil {
		return OrderErrors.Translate(err)
	}
	return respond(c, http.StatusCreated, "created successfully", order)
}

func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.UserContext())
	if err != nil {
		return OrderErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", orders)
}

func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, OrderErrors)
	if err != nil {
		return err
	}
	order, err := h.orders.Get(c.UserContext(), id)
	if err != nil {
		return OrderErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", order)
}

func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, OrderErrors)
	if err != nil {
		return err
	}
	var req dto.OrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	order, err := h.orders.Update(c.UserContext(), id, service.OrderPatch{
		OrderItems:      req.OrderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		return OrderErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "updated successfully", order)
}

func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, OrderErrors)
	if err != nil {
		return err
	}
	if err := h.orders.Delete(c.UserContext(), id); err != nil {
		return OrderErrors.Translate(err)
	}
	return noContent(c)
}
