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

type ScholarshipService interface {
	GetAllScholarships(ctx context.Context, activeOnly bool) ([]domain.Scholarship, error)
	GetScholarshipByID(ctx context.Context, id uint64) (domain.Scholarship, error)
	CreateScholarship(ctx context.Context, scholarship *domain.Scholarship) (*domain.Scholarship, error)
	UpdateScholarship(ctx context.Context, scholarship *domain.Scholarship) (*domain.Scholarship, error)
	DeleteScholarship(ctx context.Context, id uint64) error
}

type ScholarshipHandler struct {
	scholarshipService ScholarshipService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewScholarshipHandler(scholarshipService ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{
		scholarshipService: scholarshipService,
		validator:          validator.New(),
		timeout:            10 * time.Second,
	}
}

type ScholarshipRequest struct {
	Name        string     `json:"name" validate:"required"`
	Provider    string     `json:"provider,omitempty"`
	Amount      float64    `json:"amount,omitempty" validate:"omitempty,min=0"`
	Eligibility string     `json:"eligibility,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (h *ScholarshipHandler) GetAllScholarships(c echo.Context) error {
	// default to active-only for the public listing, ?all=true includes
	// closed scholarships
	activeOnly := c.QueryParam("all") != "true"

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scholarships, err := h.scholarshipService.GetAllScholarships(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to find all scholarships", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "successfully get all scholarships",
		"scholarships": scholarships,
	})
}

func (h *ScholarshipHandler) GetScholarshipByID(c echo.Context) error {
	scholarshipID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid scholarship id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scholarship, err := h.scholarshipService.GetScholarshipByID(ctx, scholarshipID)
	if err != nil {
		logger.Error("Failed to find scholarship", err)
		if err.Error() == "scholarship not found" || err.Error() == "invalid scholarship id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "successfully get scholarship",
		"scholarship": scholarship,
	})
}

func (h *ScholarshipHandler) CreateScholarship(c echo.Context) error {
	var req ScholarshipRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate scholarship request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scholarship := &domain.Scholarship{
		Name:        req.Name,
		Provider:    req.Provider,
		Amount:      req.Amount,
		Eligibility: req.Eligibility,
		Deadline:    req.Deadline,
		IsActive:    true,
	}
	if req.IsActive != nil {
		scholarship.IsActive = *req.IsActive
	}

	newScholarship, err := h.scholarshipService.CreateScholarship(ctx, scholarship)
	if err != nil {
		logger.Error("Failed to create scholarship", err)
		if err.Error() == "scholarship name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "scholarship successfully created",
		"scholarship": newScholarship,
	})
}

func (h *ScholarshipHandler) UpdateScholarship(c echo.Context) error {
	scholarshipID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid scholarship id"})
	}

	var req ScholarshipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scholarship := &domain.Scholarship{
		ID:          scholarshipID,
		Name:        req.Name,
		Provider:    req.Provider,
		Amount:      req.Amount,
		Eligibility: req.Eligibility,
		Deadline:    req.Deadline,
		IsActive:    true,
	}
	if req.IsActive != nil {
		scholarship.IsActive = *req.IsActive
	}

	updated, err := h.scholarshipService.UpdateScholarship(ctx, scholarship)
	if err != nil {
		logger.Error("Failed to update scholarship", err)
		if err.Error() == "scholarship not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "scholarship successfully updated",
		"scholarship": updated,
	})
}

func (h *ScholarshipHandler) DeleteScholarship(c echo.Context) error {
	scholarshipID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid scholarship id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.scholarshipService.DeleteScholarship(ctx, scholarshipID); err != nil {
		logger.Error("Failed to delete scholarship", err)
		if err.Error() == "scholarship not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "scholarship successfully deleted",
	})
}
