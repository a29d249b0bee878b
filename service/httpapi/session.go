package httpapi

import (
	"fmt"
	"net/http"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/service/session"
	"github.com/go-chi/chi/v5"
)

type sessionForms struct {
	Items []session.SessionForm `json:"items"`
}

type wishlistForms struct {
	Items []session.WishlistForm `json:"items"`
}

type wishlistRequest struct {
	SessionKey string `json:"sessionKey"`
}

func (h *Handler) writeSessions(w http.ResponseWriter, r *http.Request, forms []session.SessionForm, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionForms{Items: forms})
}

// CreateSession handles POST /conference/{key}/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input session.SessionInput
	if !decodeOrBadRequest(w, r, &input) {
		return
	}

	form, err := h.session.CreateSession(r.Context(), user, chi.URLParam(r, "key"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, form)
}

// GetConferenceSessions handles GET /conference/{key}/sessions?type=
func (h *Handler) GetConferenceSessions(w http.ResponseWriter, r *http.Request) {
	forms, err := h.session.GetConferenceSessions(r.Context(), chi.URLParam(r, "key"), r.URL.Query().Get("type"))
	h.writeSessions(w, r, forms, err)
}

// GetEarlySessions handles GET /conference/{key}/sessions/early?before=&excludeType=,
// before defaults to 19:00 and excludeType to Workshop
func (h *Handler) GetEarlySessions(w http.ResponseWriter, r *http.Request) {
	before := model.NewNullClock(19, 0)
	if raw := r.URL.Query().Get("before"); raw != "" {
		parsed, err := model.ParseNullClock(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: before: %v", session.ErrInvalidSession, err))
			return
		}
		before = parsed
	}

	excludedType := session.WorkshopType
	if values, ok := r.URL.Query()["excludeType"]; ok {
		excludedType = values[0]
	}

	forms, err := h.session.GetSessionsBefore(r.Context(), chi.URLParam(r, "key"), before, excludedType)
	h.writeSessions(w, r, forms, err)
}

// GetSessionsBySpeaker handles GET /sessions?speaker=
func (h *Handler) GetSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	forms, err := h.session.GetSessionsBySpeaker(r.Context(), r.URL.Query().Get("speaker"))
	h.writeSessions(w, r, forms, err)
}

// GetFeaturedSpeaker handles GET /sessions/featuredSpeaker
func (h *Handler) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stringMessage{Data: h.session.GetFeaturedSpeaker(r.Context())})
}

// AddSessionToWishlist handles POST /wishlist
func (h *Handler) AddSessionToWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req wishlistRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}

	form, err := h.session.AddSessionToWishlist(r.Context(), user.ID, req.SessionKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, form)
}

// GetWishlist handles GET /wishlist?speaker=&type=
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	forms, err := h.session.GetWishlist(r.Context(), user.ID, r.URL.Query().Get("speaker"), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistForms{Items: forms})
}
