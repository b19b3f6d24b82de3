// Package notification implements the HTTP handlers for the
// notification registry.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/api/dto"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/api/respond"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
	notifrepo "github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/notification"
	"github.com/a0l6g0r8a9l2/investHelperBE/pkg/quotes"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type registryService interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	GetOne(ctx context.Context, chatID string, id uuid.UUID) (model.Notification, error)
	GetMany(ctx context.Context, chatID string) ([]model.Notification, error)
}

type Handler struct {
	service   registryService
	validator *validator.Validate
}

func NewHandler(s registryService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			zlog.Logger.Warn().Err(err).Str("ticker", req.Ticker).Msg("rejected notification")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, quotes.ErrNoQuote):
			zlog.Logger.Warn().Str("ticker", req.Ticker).Msg("unknown ticker")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown ticker: %s", req.Ticker))
		case errors.Is(err, quotes.ErrUnavailable):
			zlog.Logger.Error().Err(err).Str("ticker", req.Ticker).Msg("quote source unavailable")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("quote source unavailable"))
		default:
			zlog.Logger.Error().Err(err).Str("ticker", req.Ticker).Msg("failed to create notification")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, created)
}

func (h *Handler) GetOne(c *ginext.Context) {
	chatID := c.Query("chatId")
	if chatID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing chatId"))
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	n, err := h.service.GetOne(c.Request.Context(), chatID, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, n)
}

func (h *Handler) GetAll(c *ginext.Context) {
	chatID := c.Query("chatId")
	if chatID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing chatId"))
		return
	}

	notifications, err := h.service.GetMany(c.Request.Context(), chatID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("chatId", chatID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}
