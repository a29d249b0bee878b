package conference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/repository"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/google/uuid"
)

// ErrConferenceNotFound ...
var ErrConferenceNotFound = errors.New("conference not found")

// ErrForbidden is returned when a user changes a conference organized by someone else
var ErrForbidden = errors.New("only the owner can update the conference")

// ErrInvalidConference ...
var ErrInvalidConference = errors.New("invalid conference")

// ErrInvalidProfile ...
var ErrInvalidProfile = errors.New("invalid profile")

// User is the already authenticated caller
type User struct {
	ID    string
	Email string
}

// Nickname is the local part of the email, or the id when the email is unknown
func (u User) Nickname() string {
	if u.Email == "" {
		return u.ID
	}
	nickname, _, _ := strings.Cut(u.Email, "@")
	return nickname
}

// Service ...
type Service struct {
	provider    repository.Provider
	manager     *ledger.Manager
	query       *query.Service
	confRepo    repository.Conference
	profileRepo repository.Profile
	names       *nameCache

	newID func() string
}

// NewService ...
func NewService(
	provider repository.Provider,
	manager *ledger.Manager,
	querySvc *query.Service,
	confRepo repository.Conference,
	profileRepo repository.Profile,
) *Service {
	return &Service{
		provider:    provider,
		manager:     manager,
		query:       querySvc,
		confRepo:    confRepo,
		profileRepo: profileRepo,
		names:       newNameCache(profileRepo),

		newID: uuid.NewString,
	}
}

// CreateConference ...
func (s *Service) CreateConference(ctx context.Context, userID string, input ConferenceInput) (ConferenceForm, error) {
	conf, err := newConference(s.newID(), userID, input)
	if err != nil {
		return ConferenceForm{}, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.confRepo.InsertConference(ctx, conf)
	})
	if err != nil {
		return ConferenceForm{}, err
	}

	return s.toForm(ctx, conf)
}

// UpdateConference changes the supplied fields of a conference owned by userID.
// A new capacity recomputes the remaining seats from the current attendees.
func (s *Service) UpdateConference(
	ctx context.Context, userID string, conferenceID string, input ConferenceInput,
) (ConferenceForm, error) {
	conf, err := ledger.RunAtomic(ctx, s.manager, func(ctx context.Context) (model.Conference, error) {
		result, err := s.confRepo.GetConference(ctx, conferenceID)
		if err != nil {
			return model.Conference{}, err
		}
		if !result.Valid {
			return model.Conference{}, fmt.Errorf("%w: %s", ErrConferenceNotFound, conferenceID)
		}

		conf := result.Conference
		if conf.OrganizerUserID != userID {
			return model.Conference{}, ErrForbidden
		}

		if err := applyConferenceInput(&conf, input); err != nil {
			return model.Conference{}, err
		}

		if input.MaxAttendees != nil {
			attendees, err := s.confRepo.CountAttendees(ctx, conferenceID)
			if err != nil {
				return model.Conference{}, err
			}
			if !conf.Uncapped() && conf.MaxAttendees < attendees {
				return model.Conference{}, fmt.Errorf("%w: maxAttendees %d is less than the %d registered attendees",
					ErrInvalidConference, conf.MaxAttendees, attendees)
			}

			conf.SeatsAvailable = 0
			if !conf.Uncapped() {
				conf.SeatsAvailable = conf.MaxAttendees - attendees
			}
		}

		if err := s.confRepo.UpdateConference(ctx, conf); err != nil {
			return model.Conference{}, err
		}
		conf.Version++
		return conf, nil
	})
	if err != nil {
		return ConferenceForm{}, err
	}

	return s.toForm(ctx, conf)
}

// GetConference ...
func (s *Service) GetConference(ctx context.Context, conferenceID string) (ConferenceForm, error) {
	result, err := s.confRepo.GetConference(s.provider.Readonly(ctx), conferenceID)
	if err != nil {
		return ConferenceForm{}, err
	}
	if !result.Valid {
		return ConferenceForm{}, fmt.Errorf("%w: %s", ErrConferenceNotFound, conferenceID)
	}
	return s.toForm(ctx, result.Conference)
}

// GetConferencesCreated returns the conferences organized by userID, ordered by name
func (s *Service) GetConferencesCreated(ctx context.Context, userID string) ([]ConferenceForm, error) {
	plan, err := query.NewPlan(model.FilterConstraint{
		Field:    model.ConferenceFieldOrganizer,
		Operator: model.FilterOperatorEq,
		Value:    userID,
	})
	if err != nil {
		return nil, err
	}

	confs, err := query.Collect(s.query.Query(ctx, plan))
	if err != nil {
		return nil, err
	}
	return s.toForms(ctx, confs)
}

// QueryConferences ...
func (s *Service) QueryConferences(ctx context.Context, filters []query.RawFilter) ([]ConferenceForm, error) {
	confs, err := s.query.QueryFilters(ctx, filters)
	if err != nil {
		return nil, err
	}
	return s.toForms(ctx, confs)
}

// GetConferencesToAttend returns the conferences in the attendance set of userID
func (s *Service) GetConferencesToAttend(ctx context.Context, userID string) ([]ConferenceForm, error) {
	readCtx := s.provider.Readonly(ctx)

	profile, err := s.profileRepo.GetProfile(readCtx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.Valid {
		return []ConferenceForm{}, nil
	}

	confs, err := s.confRepo.GetConferences(readCtx, profile.Profile.ConferenceKeysToAttend)
	if err != nil {
		return nil, err
	}
	return s.toForms(ctx, confs)
}

func (s *Service) toForm(ctx context.Context, conf model.Conference) (ConferenceForm, error) {
	forms, err := s.toForms(ctx, []model.Conference{conf})
	if err != nil {
		return ConferenceForm{}, err
	}
	return forms[0], nil
}

func (s *Service) toForms(ctx context.Context, confs []model.Conference) ([]ConferenceForm, error) {
	userIDs := make([]string, 0, len(confs))
	for _, conf := range confs {
		userIDs = append(userIDs, conf.OrganizerUserID)
	}

	names, err := s.names.getNames(s.provider.Readonly(ctx), userIDs)
	if err != nil {
		return nil, err
	}

	forms := make([]ConferenceForm, 0, len(confs))
	for _, conf := range confs {
		forms = append(forms, toConferenceForm(conf, names[conf.OrganizerUserID]))
	}
	return forms, nil
}
