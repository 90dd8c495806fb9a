package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
	"github.com/carewatch/carewatch-backend/internal/service/escalation"
	"github.com/carewatch/carewatch-backend/internal/transport/middleware"
	"github.com/carewatch/carewatch-backend/pkg/ctxutil"
)

// escalationService defines the minimal interface needed by EmergencyHandler.
type escalationService interface {
	Raise(ctx context.Context, in escalation.RaiseInput) (*escalation.RaiseResult, error)
	Resolve(ctx context.Context, in escalation.CloseInput) (*escalation.EmergencyView, error)
	Cancel(ctx context.Context, in escalation.CloseInput) (*escalation.EmergencyView, error)
	GetStatus(ctx context.Context, id uuid.UUID) (*escalation.EmergencyView, error)
	ListActive(ctx context.Context) ([]escalation.EmergencyView, error)
	History(ctx context.Context, in escalation.HistoryInput) (domain.Page[escalation.EmergencyView], error)
}

// EmergencyHandler serves emergency REST endpoints.
type EmergencyHandler struct {
	svc escalationService
	log *slog.Logger
}

// NewEmergencyHandler creates an EmergencyHandler.
func NewEmergencyHandler(svc escalationService, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{svc: svc, log: logger.With("handler", "emergency")}
}

type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type raiseRequest struct {
	ProtectedUserID uuid.UUID        `json:"protectedUserId"`
	Kind            string           `json:"kind"`
	Confidence      *float64         `json:"confidence,omitempty"`
	Location        *locationPayload `json:"location,omitempty"`
	Description     *string          `json:"description,omitempty"`
	OccurredAt      *time.Time       `json:"occurredAt,omitempty"`
}

type resolveRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type dispatchPayload struct {
	GuardianID uuid.UUID `json:"guardianId"`
	Channel    string    `json:"channel"`
	Success    bool      `json:"success"`
	ErrorKind  string    `json:"errorKind,omitempty"`
}

type notificationPayload struct {
	GuardiansAttempted int               `json:"guardiansAttempted"`
	GuardiansReached   int               `json:"guardiansReached"`
	Outcomes           []dispatchPayload `json:"outcomes,omitempty"`
}

type emergencyPayload struct {
	ID                    uuid.UUID        `json:"id"`
	ProtectedUserID       uuid.UUID        `json:"protectedUserId"`
	Kind                  string           `json:"kind"`
	Severity              string           `json:"severity"`
	Status                string           `json:"status"`
	Location              *locationPayload `json:"location,omitempty"`
	Description           *string          `json:"description,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	NotifiedAt            *time.Time       `json:"notifiedAt,omitempty"`
	ResolvedAt            *time.Time       `json:"resolvedAt,omitempty"`
	CancelledAt           *time.Time       `json:"cancelledAt,omitempty"`
	NotifiedGuardianCount int              `json:"notifiedGuardianCount"`
	ResponseTimeSeconds   *int64           `json:"responseTimeSeconds,omitempty"`
}

type raiseResponse struct {
	Emergency    emergencyPayload    `json:"emergency"`
	Notification notificationPayload `json:"notification"`
}

type historyResponse struct {
	Items []emergencyPayload `json:"items"`
	Total int                `json:"total"`
}

// Raise handles POST /emergencies.
func (h *EmergencyHandler) Raise(w http.ResponseWriter, r *http.Request) {
	var req raiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := escalation.RaiseInput{
		ProtectedUserID: req.ProtectedUserID,
		Kind:            domain.EmergencyKind(req.Kind),
		Confidence:      req.Confidence,
		Description:     req.Description,
	}
	if req.Location != nil {
		in.Location = &domain.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		}
	}
	if req.OccurredAt != nil {
		in.OccurredAt = *req.OccurredAt
	}

	result, err := h.svc.Raise(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, raiseResponse{
		Emergency:    toEmergencyPayload(result.Emergency),
		Notification: toNotificationPayload(result.Notification),
	})
}

// Resolve handles POST /emergencies/{id}/resolve.
func (h *EmergencyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.Resolve)
}

// Cancel handles POST /emergencies/{id}/cancel.
func (h *EmergencyHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.Cancel)
}

func (h *EmergencyHandler) close(w http.ResponseWriter, r *http.Request, op func(context.Context, escalation.CloseInput) (*escalation.EmergencyView, error)) {
	if err := middleware.RequireGuardian(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	actorID, ok := ctxutil.CallerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid emergency id")
		return
	}

	var req resolveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	view, err := op(r.Context(), escalation.CloseInput{
		EmergencyID: id,
		ActorID:     actorID,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmergencyPayload(*view))
}

// Get handles GET /emergencies/{id}.
func (h *EmergencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid emergency id")
		return
	}

	view, err := h.svc.GetStatus(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmergencyPayload(*view))
}

// ListActive handles GET /emergencies/active.
func (h *EmergencyHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListActive(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]emergencyPayload, len(views))
	for i, v := range views {
		items[i] = toEmergencyPayload(v)
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items, Total: len(items)})
}

// History handles GET /emergencies/history.
func (h *EmergencyHandler) History(w http.ResponseWriter, r *http.Request) {
	var in escalation.HistoryInput

	q := r.URL.Query()
	if s := q.Get("protected_user_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid protected_user_id")
			return
		}
		in.ProtectedUserID = &id
	}
	if s := q.Get("status"); s != "" {
		status := domain.EmergencyStatus(s)
		in.Status = &status
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		in.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		in.Offset = n
	}

	page, err := h.svc.History(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]emergencyPayload, len(page.Items))
	for i, v := range page.Items {
		items[i] = toEmergencyPayload(v)
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items, Total: page.Total})
}

func (h *EmergencyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrResolverUnavailable):
		h.log.ErrorContext(r.Context(), "guardian resolver unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "guardian resolver unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toEmergencyPayload(v escalation.EmergencyView) emergencyPayload {
	p := emergencyPayload{
		ID:                    v.ID,
		ProtectedUserID:       v.ProtectedUserID,
		Kind:                  v.Kind.String(),
		Severity:              v.Severity.String(),
		Status:                v.Status.String(),
		Description:           v.Description,
		CreatedAt:             v.CreatedAt,
		NotifiedAt:            v.NotifiedAt,
		ResolvedAt:            v.ResolvedAt,
		CancelledAt:           v.CancelledAt,
		NotifiedGuardianCount: v.NotifiedGuardianCount,
		ResponseTimeSeconds:   v.ResponseTimeSeconds,
	}
	if v.Location != nil {
		p.Location = &locationPayload{
			Latitude:  v.Location.Latitude,
			Longitude: v.Location.Longitude,
			Address:   v.Location.Address,
		}
	}
	return p
}

func toNotificationPayload(v escalation.NotificationView) notificationPayload {
	p := notificationPayload{
		GuardiansAttempted: v.GuardiansAttempted,
		GuardiansReached:   v.GuardiansReached,
	}
	for _, o := range v.Outcomes {
		p.Outcomes = append(p.Outcomes, dispatchPayload{
			GuardianID: o.GuardianID,
			Channel:    o.Channel.String(),
			Success:    o.Success,
			ErrorKind:  o.ErrorKind.String(),
		})
	}
	return p
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
