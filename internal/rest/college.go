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
	"gorm.io/datatypes"
)

type CollegeService interface {
	GetAllColleges(ctx context.Context) ([]domain.College, error)
	GetCollegeByID(ctx context.Context, id uint64) (domain.College, error)
	CreateCollege(ctx context.Context, college *domain.College) (*domain.College, error)
	UpdateCollege(ctx context.Context, college *domain.College) (*domain.College, error)
	DeleteCollege(ctx context.Context, id uint64) error
}

type CollegeHandler struct {
	collegeService CollegeService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCollegeHandler(collegeService CollegeService) *CollegeHandler {
	return &CollegeHandler{
		collegeService: collegeService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CollegeRequest struct {
	Name     string         `json:"name" validate:"required"`
	Location string         `json:"location,omitempty"`
	Courses  datatypes.JSON `json:"courses,omitempty"`
	Website  string         `json:"website,omitempty"`
	IsActive *bool          `json:"is_active,omitempty"`
}

func (h *CollegeHandler) GetAllColleges(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	colleges, err := h.collegeService.GetAllColleges(ctx)
	if err != nil {
		logger.Error("Failed to find all colleges", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all colleges",
		"colleges": colleges,
	})
}

func (h *CollegeHandler) GetCollegeByID(c echo.Context) error {
	collegeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid college id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	college, err := h.collegeService.GetCollegeByID(ctx, collegeID)
	if err != nil {
		logger.Error("Failed to find college", err)
		if err.Error() == "college not found" || err.Error() == "invalid college id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get college",
		"college": college,
	})
}

func (h *CollegeHandler) CreateCollege(c echo.Context) error {
	var req CollegeRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate college request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	college := &domain.College{
		Name:     req.Name,
		Location: req.Location,
		Courses:  req.Courses,
		Website:  req.Website,
		IsActive: true,
	}
	if req.IsActive != nil {
		college.IsActive = *req.IsActive
	}

	newCollege, err := h.collegeService.CreateCollege(ctx, college)
	if err != nil {
		logger.Error("Failed to create college", err)
		if err.Error() == "college name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "college successfully created",
		"college": newCollege,
	})
}

func (h *CollegeHandler) UpdateCollege(c echo.Context) error {
	collegeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid college id"})
	}

	var req CollegeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	college := &domain.College{
		ID:       collegeID,
		Name:     req.Name,
		Location: req.Location,
		Courses:  req.Courses,
		Website:  req.Website,
		IsActive: true,
	}
	if req.IsActive != nil {
		college.IsActive = *req.IsActive
	}

	updated, err := h.collegeService.UpdateCollege(ctx, college)
	if err != nil {
		logger.Error("Failed to update college", err)
		if err.Error() == "college not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "college successfully updated",
		"college": updated,
	})
}

func (h *CollegeHandler) DeleteCollege(c echo.Context) error {
	collegeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid college id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.collegeService.DeleteCollege(ctx, collegeID); err != nil {
		logger.Error("Failed to delete college", err)
		if err.Error() == "college not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "college successfully deleted",
	})
}
