package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"careerCompass/domain"
	"careerCompass/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReferenceService interface {
	GetAllFAQs(ctx context.Context) ([]domain.FAQ, error)
	CreateFAQ(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	UpdateFAQ(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint64) error
	GetAllNGOs(ctx context.Context) ([]domain.NGO, error)
	CreateNGO(ctx context.Context, ngo *domain.NGO) (*domain.NGO, error)
	UpdateNGO(ctx context.Context, ngo *domain.NGO) (*domain.NGO, error)
	DeleteNGO(ctx context.Context, id uint64) error
}

// ReferenceHandler serves the small reference tables (FAQs, NGOs).
type ReferenceHandler struct {
	referenceService ReferenceService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewReferenceHandler(referenceService ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: referenceService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type NGORequest struct {
	Name        string `json:"name" validate:"required"`
	Focus       string `json:"focus,omitempty"`
	Location    string `json:"location,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

func (h *ReferenceHandler) GetAllFAQs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	faqs, err := h.referenceService.GetAllFAQs(ctx)
	if err != nil {
		logger.Error("Failed to find all faqs", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all faqs",
		"faqs":    faqs,
	})
}

func (h *ReferenceHandler) CreateFAQ(c echo.Context) error {
	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate faq request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	faq, err := h.referenceService.CreateFAQ(ctx, &domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		logger.Error("Failed to create faq", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "faq successfully created",
		"faq":     faq,
	})
}

func (h *ReferenceHandler) UpdateFAQ(c echo.Context) error {
	faqID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid faq id"})
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	faq, err := h.referenceService.UpdateFAQ(ctx, &domain.FAQ{
		ID:       faqID,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		logger.Error("Failed to update faq", err)
		if err.Error() == "faq not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "faq successfully updated",
		"faq":     faq,
	})
}

func (h *ReferenceHandler) DeleteFAQ(c echo.Context) error {
	faqID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid faq id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.referenceService.DeleteFAQ(ctx, faqID); err != nil {
		logger.Error("Failed to delete faq", err)
		if err.Error() == "faq not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "faq successfully deleted",
	})
}

func (h *ReferenceHandler) GetAllNGOs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngos, err := h.referenceService.GetAllNGOs(ctx)
	if err != nil {
		logger.Error("Failed to find all ngos", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all ngos",
		"ngos":    ngos,
	})
}

func (h *ReferenceHandler) CreateNGO(c echo.Context) error {
	var req NGORequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate ngo request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngo, err := h.referenceService.CreateNGO(ctx, &domain.NGO{
		Name:        req.Name,
		Focus:       req.Focus,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		logger.Error("Failed to create ngo", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "ngo successfully created",
		"ngo":     ngo,
	})
}

func (h *ReferenceHandler) UpdateNGO(c echo.Context) error {
	ngoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo id"})
	}

	var req NGORequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngo, err := h.referenceService.UpdateNGO(ctx, &domain.NGO{
		ID:          ngoID,
		Name:        req.Name,
		Focus:       req.Focus,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		logger.Error("Failed to update ngo", err)
		if err.Error() == "ngo not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "ngo successfully updated",
		"ngo":     ngo,
	})
}

func (h *ReferenceHandler) DeleteNGO(c echo.Context) error {
	ngoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.referenceService.DeleteNGO(ctx, ngoID); err != nil {
		logger.Error("Failed to delete ngo", err)
		if err.Error() == "ngo not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "ngo successfully deleted",
	})
}
