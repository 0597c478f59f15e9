package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/dto"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// CategoryErrors is the failure triage for category endpoints.
var CategoryErrors = apperrors.Translator{
	Resource:     "Category",
	UniqueFields: []apperrors.FriendlyField{{Field: "name", Message: "Name is already in use"}},
}

// CategoriesHandler serves /api/category.
type CategoriesHandler struct {
	catalog *service.CatalogService
}

// NewCategoriesHandler wires the catalog service.
func NewCategoriesHandler(catalog *service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return CategoryErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", categories)
}

func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, CategoryErrors)
	if err != nil {
		return err
	}
	category, err := h.catalog.GetCategory(c.UserContext(), id)
	if err != nil {
		return CategoryErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "", category)
}

func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.catalog.CreateCategory(c.UserContext(), service.CategoryInput{
		Name:        deref(req.Name),
		Description: deref(req.Description),
	})
	if err != nil {
		return CategoryErrors.Translate(err)
	}
	return respond(c, http.StatusCreated, "created successfully", category)
}

func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, CategoryErrors)
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	category, err := h.catalog.UpdateCategory(c.UserContext(), id, service.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return CategoryErrors.Translate(err)
	}
	return respond(c, http.StatusOK, "updated successfully", category)
}

func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, CategoryErrors)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.UserContext(), id); err != nil {
		return CategoryErrors.Translate(err)
	}
	return noContent(c)
}
