package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/repository"
	"github.com/QuangTung97/conference/service/announcement"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/google/uuid"
)

// ErrSessionNotFound ...
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidSession ...
var ErrInvalidSession = errors.New("invalid session")

// ErrAlreadyInWishlist ...
var ErrAlreadyInWishlist = errors.New("session already added to wishlist")

// Service manages conference sessions and user wishlists
type Service struct {
	provider    repository.Provider
	manager     *ledger.Manager
	confRepo    repository.Conference
	sessionRepo repository.Session
	featured    *announcement.Featured

	newID func() string
}

// NewService ...
func NewService(
	provider repository.Provider,
	manager *ledger.Manager,
	confRepo repository.Conference,
	sessionRepo repository.Session,
	featured *announcement.Featured,
) *Service {
	return &Service{
		provider:    provider,
		manager:     manager,
		confRepo:    confRepo,
		sessionRepo: sessionRepo,
		featured:    featured,

		newID: uuid.NewString,
	}
}

// CreateSession adds a session to a conference organized by the user.
// A speaker with more than one session becomes the featured speaker.
func (s *Service) CreateSession(
	ctx context.Context, user conference.User, conferenceID string, input SessionInput,
) (SessionForm, error) {
	sess, err := newSession(s.newID(), conferenceID, user, input)
	if err != nil {
		return SessionForm{}, err
	}

	speakerSessions, err := ledger.RunAtomic(ctx, s.manager, func(ctx context.Context) (int64, error) {
		conf, err := s.confRepo.GetConference(ctx, conferenceID)
		if err != nil {
			return 0, err
		}
		if !conf.Valid {
			return 0, conference.ErrConferenceNotFound
		}
		if conf.Conference.OrganizerUserID != user.ID {
			return 0, conference.ErrForbidden
		}

		if err := s.sessionRepo.InsertSession(ctx, sess); err != nil {
			return 0, err
		}
		return s.sessionRepo.CountSpeakerSessions(ctx, sess.Speaker)
	})
	if err != nil {
		return SessionForm{}, err
	}

	if speakerSessions > 1 {
		s.featured.Set(ctx, sess.Speaker)
	}
	return toSessionForm(sess), nil
}

func (s *Service) collect(ctx context.Context, q repository.SessionQuery) ([]model.Session, error) {
	var result []model.Session
	for sess, err := range s.sessionRepo.QuerySessions(s.provider.Readonly(ctx), q) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", query.ErrQueryExecution, err)
		}
		result = append(result, sess)
	}
	return result, nil
}

func (s *Service) checkConference(ctx context.Context, conferenceID string) error {
	conf, err := s.confRepo.GetConference(s.provider.Readonly(ctx), conferenceID)
	if err != nil {
		return err
	}
	if !conf.Valid {
		return conference.ErrConferenceNotFound
	}
	return nil
}

func conferenceEq(conferenceID string) model.SessionConstraint {
	return model.SessionConstraint{
		Field: model.SessionFieldConference, Operator: model.FilterOperatorEq, Value: conferenceID,
	}
}

func toSessionForms(sessions []model.Session) []SessionForm {
	forms := make([]SessionForm, 0, len(sessions))
	for _, sess := range sessions {
		forms = append(forms, toSessionForm(sess))
	}
	return forms
}

// GetConferenceSessions returns the sessions of a conference ordered by name,
// an empty typeOfSession matches every type
func (s *Service) GetConferenceSessions(
	ctx context.Context, conferenceID string, typeOfSession string,
) ([]SessionForm, error) {
	if err := s.checkConference(ctx, conferenceID); err != nil {
		return nil, err
	}

	q := repository.SessionQuery{
		Filters: []model.SessionConstraint{conferenceEq(conferenceID)},
		Orders:  []model.SessionField{model.SessionFieldName},
	}
	if typeOfSession != "" {
		q.Filters = append(q.Filters, model.SessionConstraint{
			Field: model.SessionFieldType, Operator: model.FilterOperatorEq, Value: typeOfSession,
		})
	}

	sessions, err := s.collect(ctx, q)
	if err != nil {
		return nil, err
	}
	return toSessionForms(sessions), nil
}

// GetSessionsBySpeaker returns the sessions of the speaker across all conferences
func (s *Service) GetSessionsBySpeaker(ctx context.Context, speaker string) ([]SessionForm, error) {
	sessions, err := s.collect(ctx, repository.SessionQuery{
		Filters: []model.SessionConstraint{
			{Field: model.SessionFieldSpeaker, Operator: model.FilterOperatorEq, Value: speaker},
		},
		Orders: []model.SessionField{model.SessionFieldName},
	})
	if err != nil {
		return nil, err
	}
	return toSessionForms(sessions), nil
}

// GetSessionsBefore returns the sessions of a conference starting no later than before
// and not having excludedType, ordered by start time.
// The store accepts a single inequality field so the start time is the range scan
// and the type is filtered on the results.
func (s *Service) GetSessionsBefore(
	ctx context.Context, conferenceID string, before model.NullClock, excludedType string,
) ([]SessionForm, error) {
	if !before.Valid {
		return nil, fmt.Errorf("%w: start time bound is required", ErrInvalidSession)
	}
	if err := s.checkConference(ctx, conferenceID); err != nil {
		return nil, err
	}

	sessions, err := s.collect(ctx, repository.SessionQuery{
		Filters: []model.SessionConstraint{
			conferenceEq(conferenceID),
			{Field: model.SessionFieldStartTime, Operator: model.FilterOperatorLte, Value: before.Minutes},
		},
		Orders: []model.SessionField{model.SessionFieldStartTime, model.SessionFieldName},
	})
	if err != nil {
		return nil, err
	}

	forms := make([]SessionForm, 0, len(sessions))
	for _, sess := range sessions {
		if excludedType != "" && sess.HasType(excludedType) {
			continue
		}
		forms = append(forms, toSessionForm(sess))
	}
	return forms, nil
}

// GetFeaturedSpeaker returns the featured speaker announcement or empty string
func (s *Service) GetFeaturedSpeaker(ctx context.Context) string {
	return s.featured.Get(ctx)
}

// AddSessionToWishlist ...
func (s *Service) AddSessionToWishlist(ctx context.Context, userID string, sessionID string) (WishlistForm, error) {
	return ledger.RunAtomic(ctx, s.manager, func(ctx context.Context) (WishlistForm, error) {
		sess, err := s.sessionRepo.GetSession(ctx, sessionID)
		if err != nil {
			return WishlistForm{}, err
		}
		if !sess.Valid {
			return WishlistForm{}, ErrSessionNotFound
		}

		existed, err := s.sessionRepo.InWishlist(ctx, userID, sessionID)
		if err != nil {
			return WishlistForm{}, err
		}
		if existed {
			return WishlistForm{}, ErrAlreadyInWishlist
		}

		if err := s.sessionRepo.InsertWishlist(ctx, userID, sessionID); err != nil {
			return WishlistForm{}, err
		}
		return toWishlistForm(sess.Session), nil
	})
}

// GetWishlist returns the user's wishlist ordered by session name,
// filtered by speaker and by type when they are not empty
func (s *Service) GetWishlist(
	ctx context.Context, userID string, speaker string, typeOfSession string,
) ([]WishlistForm, error) {
	q := repository.SessionQuery{
		Filters: []model.SessionConstraint{
			{Field: model.SessionFieldWishlistUser, Operator: model.FilterOperatorEq, Value: userID},
		},
		Orders: []model.SessionField{model.SessionFieldName},
	}
	if speaker != "" {
		q.Filters = append(q.Filters, model.SessionConstraint{
			Field: model.SessionFieldSpeaker, Operator: model.FilterOperatorEq, Value: speaker,
		})
	}
	if typeOfSession != "" {
		q.Filters = append(q.Filters, model.SessionConstraint{
			Field: model.SessionFieldType, Operator: model.FilterOperatorEq, Value: typeOfSession,
		})
	}

	sessions, err := s.collect(ctx, q)
	if err != nil {
		return nil, err
	}

	forms := make([]WishlistForm, 0, len(sessions))
	for _, sess := range sessions {
		forms = append(forms, toWishlistForm(sess))
	}
	return forms, nil
}
