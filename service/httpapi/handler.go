package httpapi

import (
	"net/http"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/go-chi/chi/v5"
)

// CreateConference handles POST /conference
func (h *Handler) CreateConference(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input conference.ConferenceInput
	if !decodeOrBadRequest(w, r, &input) {
		return
	}

	form, err := h.conference.CreateConference(r.Context(), user.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, form)
}

// GetConference handles GET /conference/{key}
func (h *Handler) GetConference(w http.ResponseWriter, r *http.Request) {
	form, err := h.conference.GetConference(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// UpdateConference handles PUT /conference/{key}
func (h *Handler) UpdateConference(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input conference.ConferenceInput
	if !decodeOrBadRequest(w, r, &input) {
		return
	}

	form, err := h.conference.UpdateConference(r.Context(), user.ID, chi.URLParam(r, "key"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, outcome model.RegistrationOutcome, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if outcome == model.RegistrationOutcomeConferenceNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, registrationResponse{
		Data:    outcome.Changed(),
		Outcome: outcome.String(),
	})
}

// Register handles POST /conference/{key}/registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	outcome, err := h.workflow.Register(r.Context(), user.ID, chi.URLParam(r, "key"))
	h.writeOutcome(w, r, outcome, err)
}

// Unregister handles DELETE /conference/{key}/registration
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	outcome, err := h.workflow.Unregister(r.Context(), user.ID, chi.URLParam(r, "key"))
	h.writeOutcome(w, r, outcome, err)
}

// QueryConferences handles POST /queryConferences
func (h *Handler) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}

	forms, err := h.conference.QueryConferences(r.Context(), req.Filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conferenceForms{Items: forms})
}

// GetConferencesCreated handles GET /conferences/created
func (h *Handler) GetConferencesCreated(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	forms, err := h.conference.GetConferencesCreated(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conferenceForms{Items: forms})
}

// GetConferencesToAttend handles GET /conferences/attending
func (h *Handler) GetConferencesToAttend(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	forms, err := h.conference.GetConferencesToAttend(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conferenceForms{Items: forms})
}

// GetProfile handles GET /profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	form, err := h.conference.GetProfile(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// SaveProfile handles POST /profile
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input conference.ProfileInput
	if !decodeOrBadRequest(w, r, &input) {
		return
	}

	form, err := h.conference.SaveProfile(r.Context(), user, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// GetAnnouncement handles GET /conference/announcement/get
func (h *Handler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcement.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stringMessage{Data: announcement})
}
