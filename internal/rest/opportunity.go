package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"careerCompass/business/opportunity"
	"careerCompass/domain"
	"careerCompass/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OpportunityService interface {
	Map(ctx context.Context, profile domain.AptitudeProfile) (domain.OpportunityResult, error)
}

type OpportunityHandler struct {
	opportunityService OpportunityService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewOpportunityHandler(opportunityService OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		validator:          validator.New(),
		timeout:            60 * time.Second,
	}
}

// MapOpportunities runs the combined college/scholarship/job mapping for an
// aptitude profile. Sections that fail validation are reported in the
// result's errors field rather than failing the whole request.
func (h *OpportunityHandler) MapOpportunities(c echo.Context) error {
	var profile domain.AptitudeProfile
	if err := c.Bind(&profile); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&profile); err != nil {
		logger.Error("Failed to validate aptitude profile", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.opportunityService.Map(ctx, profile)
	if err != nil {
		logger.Error("Failed to map opportunities", err)
		if msg, ok := aiErrorMessage(err); ok {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: msg})
		}
		if errors.Is(err, opportunity.ErrNoSections) {
			return c.JSON(http.StatusBadGateway, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
