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

type JobPostingService interface {
	GetAllJobPostings(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error)
	GetJobPostingByID(ctx context.Context, id uint64) (domain.JobPosting, error)
	CreateJobPosting(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	UpdateJobPosting(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uint64) error
}

type JobPostingHandler struct {
	jobService JobPostingService
	validator  *validator.Validate
	timeout    time.Duration
}

func NewJobPostingHandler(jobService JobPostingService) *JobPostingHandler {
	return &JobPostingHandler{
		jobService: jobService,
		validator:  validator.New(),
		timeout:    10 * time.Second,
	}
}

type JobPostingRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (h *JobPostingHandler) GetAllJobPostings(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	jobs, err := h.jobService.GetAllJobPostings(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to find all job postings", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all job postings",
		"jobs":    jobs,
	})
}

func (h *JobPostingHandler) GetJobPostingByID(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid job posting id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	job, err := h.jobService.GetJobPostingByID(ctx, jobID)
	if err != nil {
		logger.Error("Failed to find job posting", err)
		if err.Error() == "job posting not found" || err.Error() == "invalid job posting id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get job posting",
		"job":     job,
	})
}

func (h *JobPostingHandler) CreateJobPosting(c echo.Context) error {
	var req JobPostingRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate job posting request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	job := &domain.JobPosting{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	newJob, err := h.jobService.CreateJobPosting(ctx, job)
	if err != nil {
		logger.Error("Failed to create job posting", err)
		if err.Error() == "job title is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "job posting successfully created",
		"job":     newJob,
	})
}

func (h *JobPostingHandler) UpdateJobPosting(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid job posting id"})
	}

	var req JobPostingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	job := &domain.JobPosting{
		ID:          jobID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	updated, err := h.jobService.UpdateJobPosting(ctx, job)
	if err != nil {
		logger.Error("Failed to update job posting", err)
		if err.Error() == "job posting not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "job posting successfully updated",
		"job":     updated,
	})
}

func (h *JobPostingHandler) DeleteJobPosting(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid job posting id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.jobService.DeleteJobPosting(ctx, jobID); err != nil {
		logger.Error("Failed to delete job posting", err)
		if err.Error() == "job posting not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "job posting successfully deleted",
	})
}
