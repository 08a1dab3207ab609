package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"roombook/internal/bookings/events"
	"roombook/internal/bookings/service"
	apperrors "roombook/pkg/errors"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"
	"roombook/pkg/middleware"
	"roombook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const cancelledMessage = "booking cancelled"

// createBookingRequest carries timestamps as strings so zone-less values can
// be accepted and read as UTC.
type createBookingRequest struct {
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type updateBookingRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	start, end, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	booking, err := h.service.Create(correlated(r), &model.BookingCreate{
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req updateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	start, end, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	booking, err := h.service.Update(correlated(r), ps.ByName("id"), &model.BookingUpdate{
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Cancel(correlated(r), ps.ByName("id")); err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	if err := httputil.WriteMessage(w, cancelledMessage); err != nil {
		h.log.Error("failed to write message response", "handler", "Cancel", "operation", "WriteMessage", "error", err)
	}
}

func (h *BookingHandler) ListByRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	from, to, err := httputil.ExtractTimeWindow(r)
	if err != nil {
		h.writeError(w, "ListByRoom", err)
		return
	}

	bookings, err := h.service.ListByRoom(r.Context(), ps.ByName("id"), from, to)
	if err != nil {
		h.writeError(w, "ListByRoom", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByRoom", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) ListByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookings, err := h.service.ListByUser(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "ListByUser", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByUser", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, toAppError(err)); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/:id", h.GetByID)
	router.PUT("/api/v1/bookings/:id", h.Update)
	router.DELETE("/api/v1/bookings/:id", h.Cancel)
	router.GET("/api/v1/rooms/:id/bookings", h.ListByRoom)
	router.GET("/api/v1/users/:id/bookings", h.ListByUser)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apperrors.PayloadTooLarge(fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit))
		}
		return apperrors.InvalidInput("Invalid request body")
	}
	return nil
}

// parseInterval leaves a missing timestamp as the zero time so the validator
// reports it as required.
func parseInterval(startValue, endValue string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startValue != "" {
		if start, err = httputil.ParseTimestamp(startValue); err != nil {
			return time.Time{}, time.Time{}, apperrors.InvalidInput("invalid start_time: " + startValue)
		}
	}
	if endValue != "" {
		if end, err = httputil.ParseTimestamp(endValue); err != nil {
			return time.Time{}, time.Time{}, apperrors.InvalidInput("invalid end_time: " + endValue)
		}
	}
	return start, end, nil
}

func correlated(r *http.Request) context.Context {
	return events.WithCorrelationID(r.Context(), middleware.RequestIDFromContext(r.Context()))
}
