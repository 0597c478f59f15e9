package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// ProductErrors is the failure triage for product endpoints.
var ProductErrors = apperrors.Translator{
	Resource:     "Product",
	UniqueFields: []apperrors.FriendlyField{{Field: "name", Message: "Product name is already in use"}},
}

// ProductsHandler serves /api/product.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler wires the catalog service.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List handles GET /api/product, optionally filtered with ?idCategory=.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	idCategory := strings.TrimSpace(c.Query("idCategory"))
	if idCategory != "" {
		if _, err := uuid.Parse(idCategory); err != nil {
			return apperrors.NewValidationError("Validation error", map[string]string{
				"idCategory": "idCategory must be a valid id",
			})
		}
	}
	products, err := h.catalog.ListProducts(c.UserContext(), idCategory)
	if err != nil {
		return ProductErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", products)
}

func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, ProductErrors)
	if err != nil {
		return err
	}
	product, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return ProductErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", product)
}

func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.catalog.CreateProduct(c.UserContext(), service.ProductInput{
		Name:          deref(req.Name),
		Description:   deref(req.Description),
		Price:         deref(req.Price),
		StockQuantity: deref(req.StockQuantity),
		Image:         deref(req.Image),
		IDCategory:    deref(req.IDCategory),
	})
	if err != nil {
		return ProductErrors.Translate(err)
	}
	return respond(c, http.StatusCreated, "created successfully", product)
}

func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, ProductErrors)
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.catalog.UpdateProduct(c.UserContext(), id, service.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Image:         req.Image,
		IDCategory:    req.IDCategory,
	})
	if err != nil {
		return ProductErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "updated successfully", product)
}

func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, ProductErrors)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return ProductErrors.Translate(err)
	}
	return noContent(c)
}
