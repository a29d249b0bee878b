package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/service/conference"
)

// SessionForm is the outbound representation of a session
type SessionForm struct {
	WebsafeKey    string   `json:"websafeKey"`
	ConferenceKey string   `json:"conferenceKey"`
	Name          string   `json:"name"`
	Highlights    string   `json:"highlights"`
	Speaker       string   `json:"speaker"`
	Duration      int64    `json:"duration"`
	TypeOfSession []string `json:"typeOfSession"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
}

// SessionInput contains the fields a caller can write, a nil field is not supplied
type SessionInput struct {
	Name          *string  `json:"name"`
	Highlights    *string  `json:"highlights"`
	Speaker       *string  `json:"speaker"`
	Duration      *int64   `json:"duration"`
	TypeOfSession []string `json:"typeOfSession"`
	Date          *string  `json:"date"`
	StartTime     *string  `json:"startTime"`
}

// WishlistForm is one session of a user's wishlist
type WishlistForm struct {
	SessionKey    string   `json:"sessionKey"`
	SessionName   string   `json:"sessionName"`
	TypeOfSession []string `json:"typeOfSession"`
}

var defaultTypesOfSession = []string{"Workshop", "Lecture"}

// WorkshopType is the session type left out of the early sessions query by default
const WorkshopType = "Workshop"

func toSessionForm(sess model.Session) SessionForm {
	return SessionForm{
		WebsafeKey:    sess.ID,
		ConferenceKey: sess.ConferenceID,
		Name:          sess.Name,
		Highlights:    sess.Highlights,
		Speaker:       sess.Speaker,
		Duration:      sess.DurationMinutes,
		TypeOfSession: []string(sess.TypesOfSession),
		Date:          sess.Date.String(),
		StartTime:     sess.StartTime.String(),
	}
}

func toWishlistForm(sess model.Session) WishlistForm {
	return WishlistForm{
		SessionKey:    sess.ID,
		SessionName:   sess.Name,
		TypeOfSession: []string(sess.TypesOfSession),
	}
}

// normalizeTypes sorts and dedupes, the same order the store reads them back in
func normalizeTypes(types []string) model.TopicList {
	result := make(model.TopicList, 0, len(types))
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, existed := seen[t]; existed {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

func validateTypes(types []string) error {
	for _, t := range types {
		if t == "" || strings.Contains(t, ",") {
			return fmt.Errorf("%w: invalid type of session %q", ErrInvalidSession, t)
		}
	}
	return nil
}

// newSession builds the record from the input, the speaker defaults to the caller's nickname
func newSession(id string, conferenceID string, user conference.User, input SessionInput) (model.Session, error) {
	if input.Name == nil || *input.Name == "" {
		return model.Session{}, fmt.Errorf("%w: name is required", ErrInvalidSession)
	}

	sess := model.Session{
		ID:             id,
		ConferenceID:   conferenceID,
		Name:           *input.Name,
		Speaker:        user.Nickname(),
		TypesOfSession: normalizeTypes(defaultTypesOfSession),
	}

	if input.Highlights != nil {
		sess.Highlights = *input.Highlights
	}
	if input.Speaker != nil && *input.Speaker != "" {
		sess.Speaker = *input.Speaker
	}
	if input.Duration != nil {
		if *input.Duration < 0 {
			return model.Session{}, fmt.Errorf("%w: duration must not be negative", ErrInvalidSession)
		}
		sess.DurationMinutes = *input.Duration
	}
	if len(input.TypeOfSession) > 0 {
		if err := validateTypes(input.TypeOfSession); err != nil {
			return model.Session{}, err
		}
		sess.TypesOfSession = normalizeTypes(input.TypeOfSession)
	}

	if input.Date != nil {
		date, err := model.ParseNullDate(*input.Date)
		if err != nil {
			return model.Session{}, fmt.Errorf("%w: date: %v", ErrInvalidSession, err)
		}
		sess.Date = date
	}
	if input.StartTime != nil {
		startTime, err := model.ParseNullClock(*input.StartTime)
		if err != nil {
			return model.Session{}, fmt.Errorf("%w: startTime: %v", ErrInvalidSession, err)
		}
		sess.StartTime = startTime
	}

	return sess, nil
}
