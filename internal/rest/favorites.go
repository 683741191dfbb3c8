package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"careerCompass/business/favorites"
	"careerCompass/domain"
	"careerCompass/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type FavoritesService interface {
	Add(ctx context.Context, userID uint, itemType string, itemID uint64) error
	Remove(ctx context.Context, userID uint, itemType string, itemID uint64) error
	List(ctx context.Context, userID uint) ([]domain.Favorite, error)
}

type FavoritesHandler struct {
	favoritesService FavoritesService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewFavoritesHandler(favoritesService FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type FavoriteRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=career college scholarship job"`
	ItemID   uint64 `json:"item_id" validate:"required"`
}

func (h *FavoritesHandler) Add(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate favorite request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.favoritesService.Add(ctx, userID, req.ItemType, req.ItemID); err != nil {
		logger.Error("Failed to add favorite", err)
		if errors.Is(err, favorites.ErrUnknownItemType) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("Favorite added successfully"))
}

func (h *FavoritesHandler) Remove(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.favoritesService.Remove(ctx, userID, req.ItemType, req.ItemID); err != nil {
		logger.Error("Failed to remove favorite", err)
		if errors.Is(err, favorites.ErrUnknownItemType) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if err.Error() == "favorite not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Favorite removed successfully"))
}

func (h *FavoritesHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	favs, err := h.favoritesService.List(ctx, userID)
	if err != nil {
		logger.Error("Failed to list favorites", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(favs))
}
