package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdmissionHandler exposes the join-request lifecycle over HTTP. It is thin
// glue: parsing, identity, and status-code mapping; every rule lives in the
// service underneath.
type AdmissionHandler struct {
	admission    service.AdmissionService
	availability service.AvailabilityService
}

func NewAdmissionHandler(admission service.AdmissionService, availability service.AvailabilityService) *AdmissionHandler {
	return &AdmissionHandler{
		admission:    admission,
		availability: availability,
	}
}

type createJoinRequestBody struct {
	PartySize int32  `json:"party_size"`
	Note      string `json:"note"`
}

type extendHoldBody struct {
	Minutes int32 `json:"minutes"`
}

type listRequestsResponse struct {
	Requests   []domain.JoinRequest `json:"requests"`
	NextOffset *int32               `json:"next_offset"`
}

type expireHoldsResponse struct {
	Expired int64 `json:"expired"`
}

func (h *AdmissionHandler) CreateJoinRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var body createJoinRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	req, err := h.admission.CreateJoinRequest(r.Context(), mux.Vars(r)["eventID"], actor.UserID, body.PartySize, body.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *AdmissionHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := parseInt32(q.Get("limit"), 0)
	offset := parseInt32(q.Get("offset"), 0)
	status := domain.JoinRequestStatus(q.Get("status"))

	reqs, nextOffset, err := h.admission.ListRequests(r.Context(), mux.Vars(r)["eventID"], status, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.JoinRequest{}
	}
	writeJSON(w, http.StatusOK, listRequestsResponse{Requests: reqs, NextOffset: nextOffset})
}

func (h *AdmissionHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	av, err := h.availability.GetEventAvailability(r.Context(), mux.Vars(r)["eventID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, av)
}

func (h *AdmissionHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.admission.ApproveRequest)
}

func (h *AdmissionHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.admission.DeclineRequest)
}

func (h *AdmissionHandler) WaitlistRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.admission.WaitlistRequest)
}

func (h *AdmissionHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.admission.CancelRequest)
}

func (h *AdmissionHandler) ExtendHold(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	body := extendHoldBody{Minutes: 30}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	req, err := h.admission.ExtendRequestHold(r.Context(), mux.Vars(r)["requestID"], actor.UserID, body.Minutes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ExpireHolds is invoked by the scheduler deployment, not by end users.
func (h *AdmissionHandler) ExpireHolds(w http.ResponseWriter, r *http.Request) {
	count, err := h.admission.ExpireHolds(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expireHoldsResponse{Expired: count})
}

func (h *AdmissionHandler) resolve(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, requestID, actorID string) (*domain.JoinRequest, error)) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	req, err := op(r.Context(), mux.Vars(r)["requestID"], actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}
