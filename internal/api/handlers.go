// Package api exposes HTTP handlers for the roster service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/roster/internal/domain"
	"example.com/roster/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service   *domain.Service
	staticDir string
}

// NewHandler builds a Handler. staticDir is the directory served under /static/.
func NewHandler(service *domain.Service, staticDir string) *Handler {
	return &Handler{service: service, staticDir: staticDir}
}

// RegisterRoutes wires endpoints to the mux. Activity names in the path may
// contain spaces; the mux hands them to PathValue already decoded.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /{$}", http.RedirectHandler("/static/index.html", http.StatusTemporaryRedirect))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.unregister)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for _, activity := range activities {
		resp[activity.Name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := strings.TrimSpace(r.URL.Query().Get("email"))

	activity, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := strings.TrimSpace(r.URL.Query().Get("email"))

	activity, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	observability.RecordUnregister(activity.Name, len(activity.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity.Name),
	})
}

// MessageResponse is the body of a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable failure detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ActivityView exposes one activity in the GET /activities mapping.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, domain.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, domain.ErrEmailRequired):
		writeError(w, http.StatusBadRequest, "email is required")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
