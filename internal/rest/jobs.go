package rest

import (
	"context"
	"net/http"
	"time"

	"careerCompass/business/maintenance"
	"careerCompass/business/trainer"
	"careerCompass/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type MaintenanceService interface {
	Refresh(ctx context.Context) (maintenance.RefreshResults, error)
}

type TrainerService interface {
	Train(ctx context.Context) (trainer.TrainingStats, error)
}

// JobsHandler exposes the scheduled maintenance endpoints. Both are guarded
// by the service credential, not a user session.
type JobsHandler struct {
	maintenanceService MaintenanceService
	trainerService     TrainerService
	timeout            time.Duration
}

func NewJobsHandler(maintenanceService MaintenanceService, trainerService TrainerService) *JobsHandler {
	return &JobsHandler{
		maintenanceService: maintenanceService,
		trainerService:     trainerService,
		timeout:            120 * time.Second,
	}
}

func (h *JobsHandler) RefreshData(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.maintenanceService.Refresh(ctx)
	if err != nil {
		logger.Error("Failed to run data refresh", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}

func (h *JobsHandler) TrainModel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.trainerService.Train(ctx)
	if err != nil {
		logger.Error("Failed to run model training", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}
