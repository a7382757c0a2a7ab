package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the admission API. Everything except the health check
// requires an authenticated actor.
func NewRouter(auth *AuthMiddleware, admission *AdmissionHandler, notifications *NotificationHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(auth.Handler)

	api.HandleFunc("/events/{eventID}/join-requests", admission.CreateJoinRequest).Methods(http.MethodPost)
	api.HandleFunc("/events/{eventID}/join-requests", admission.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventID}/availability", admission.GetAvailability).Methods(http.MethodGet)

	api.HandleFunc("/join-requests/{requestID}/approve", admission.ApproveRequest).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestID}/decline", admission.DeclineRequest).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestID}/waitlist", admission.WaitlistRequest).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestID}/cancel", admission.CancelRequest).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestID}/extend", admission.ExtendHold).Methods(http.MethodPost)

	api.HandleFunc("/admin/expire-holds", admission.ExpireHolds).Methods(http.MethodPost)

	api.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{notificationID}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	return r
}
