package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/service/announcement"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/QuangTung97/conference/service/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	userIDHeader    = "X-User-ID"
	userEmailHeader = "X-User-Email"
)

const maxBodySize = 1 << 20

// Handler ...
type Handler struct {
	conference   *conference.Service
	workflow     ledger.IWorkflow
	announcement *announcement.Service
	session      *session.Service
}

// NewHandler ...
func NewHandler(
	conferenceSvc *conference.Service, workflow ledger.IWorkflow,
	announcementSvc *announcement.Service, sessionSvc *session.Service,
) *Handler {
	return &Handler{
		conference:   conferenceSvc,
		workflow:     workflow,
		announcement: announcementSvc,
		session:      sessionSvc,
	}
}

// NewRouter returns the router with every conference endpoint, the caller can mount more handlers on it
func NewRouter(h *Handler, logger *zap.Logger, tracer trace.Tracer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(otellib.HTTPMiddleware(logger, tracer))
	r.Use(logFields)

	r.Get("/health", Health)

	r.Post("/conference", h.CreateConference)
	r.Get("/conference/announcement/get", h.GetAnnouncement)
	r.Route("/conference/{key}", func(r chi.Router) {
		r.Get("/", h.GetConference)
		r.Put("/", h.UpdateConference)
		r.Post("/registration", h.Register)
		r.Delete("/registration", h.Unregister)

		r.Post("/sessions", h.CreateSession)
		r.Get("/sessions", h.GetConferenceSessions)
		r.Get("/sessions/early", h.GetEarlySessions)
	})

	r.Get("/sessions", h.GetSessionsBySpeaker)
	r.Get("/sessions/featuredSpeaker", h.GetFeaturedSpeaker)
	r.Post("/wishlist", h.AddSessionToWishlist)
	r.Get("/wishlist", h.GetWishlist)

	r.Post("/queryConferences", h.QueryConferences)
	r.Get("/conferences/created", h.GetConferencesCreated)
	r.Get("/conferences/attending", h.GetConferencesToAttend)

	r.Get("/profile", h.GetProfile)
	r.Post("/profile", h.SaveProfile)

	return r
}

// logFields adds the request id and the calling user to the request logger
func logFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := []zap.Field{zap.String("request.id", middleware.GetReqID(r.Context()))}
		if userID := r.Header.Get(userIDHeader); userID != "" {
			fields = append(fields, zap.String("user.id", userID))
		}
		next.ServeHTTP(w, r.WithContext(otellib.WithFields(r.Context(), fields...)))
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

type conferenceForms struct {
	Items []conference.ConferenceForm `json:"items"`
}

type queryRequest struct {
	Filters []query.RawFilter `json:"filters"`
}

type registrationResponse struct {
	Data    bool   `json:"data"`
	Outcome string `json:"outcome"`
}

type stringMessage struct {
	Data string `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON limits the body to maxBodySize, the server closes the connection after an oversized body
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, query.ErrInvalidFilter),
		errors.Is(err, query.ErrMultipleInequalityFields),
		errors.Is(err, conference.ErrInvalidConference),
		errors.Is(err, conference.ErrInvalidProfile),
		errors.Is(err, session.ErrInvalidSession):
		return http.StatusBadRequest
	case errors.Is(err, conference.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, conference.ErrConferenceNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrConcurrencyConflict),
		errors.Is(err, session.ErrAlreadyInWishlist):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		otellib.LogError(r.Context(), "request failed", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// requireUser returns false after writing 401 if the request has no user
func requireUser(w http.ResponseWriter, r *http.Request) (conference.User, bool) {
	user := conference.User{
		ID:    r.Header.Get(userIDHeader),
		Email: r.Header.Get(userEmailHeader),
	}
	if user.ID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization required"})
		return conference.User{}, false
	}
	return user, true
}

func decodeOrBadRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// Health ...
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
