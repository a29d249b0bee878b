package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/repository"
	"go.uber.org/zap"
)

//go:generate otelwrap --out workflow_wrappers.go . IWorkflow
//go:generate moq -out workflow_mock.go . IWorkflow

// IWorkflow ...
type IWorkflow interface {
	Register(ctx context.Context, userID string, conferenceID string) (model.RegistrationOutcome, error)
	Unregister(ctx context.Context, userID string, conferenceID string) (model.RegistrationOutcome, error)
}

// ErrLedgerInvariant is returned when a seat counter would leave its allowed range, it indicates a bug
var ErrLedgerInvariant = errors.New("ledger invariant violated")

// Workflow registers and unregisters users to conferences
type Workflow struct {
	manager     *Manager
	confRepo    repository.Conference
	profileRepo repository.Profile
	metrics     *Metrics
}

var _ IWorkflow = &Workflow{}

// NewWorkflow ...
func NewWorkflow(
	manager *Manager, confRepo repository.Conference, profileRepo repository.Profile, metrics *Metrics,
) *Workflow {
	return &Workflow{
		manager:     manager,
		confRepo:    confRepo,
		profileRepo: profileRepo,
		metrics:     metrics,
	}
}

type ledgerState struct {
	conf    model.Conference
	profile model.NullProfile
}

func (w *Workflow) load(ctx context.Context, userID string, conferenceID string) (ledgerState, bool, error) {
	conf, err := w.confRepo.GetConference(ctx, conferenceID)
	if err != nil {
		return ledgerState{}, false, err
	}
	if !conf.Valid {
		return ledgerState{}, false, nil
	}

	profile, err := w.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return ledgerState{}, false, err
	}
	if !profile.Valid {
		profile.Profile = model.NewProfile(userID)
	}

	return ledgerState{
		conf:    conf.Conference,
		profile: profile,
	}, true, nil
}

// commit writes both records back, conf.Version and profile.Version are the versions read by load
func (w *Workflow) commit(ctx context.Context, state ledgerState) error {
	if err := state.conf.CheckLedger(); err != nil {
		w.metrics.incBreaches()
		otellib.Extract(ctx).Error("ledger invariant violated",
			zap.String("conference.id", state.conf.ID),
			zap.String("profile.id", state.profile.Profile.ID),
			zap.Int64("seats_available", state.conf.SeatsAvailable),
			zap.Int64("max_attendees", state.conf.MaxAttendees),
		)
		return fmt.Errorf("%w: %v", ErrLedgerInvariant, err)
	}

	var err error
	if state.profile.Valid {
		err = w.profileRepo.SaveProfile(ctx, state.profile.Profile)
	} else {
		err = w.profileRepo.InsertProfile(ctx, state.profile.Profile)
	}
	if err != nil {
		return err
	}

	return w.confRepo.UpdateSeats(ctx, state.conf)
}

func (w *Workflow) run(
	ctx context.Context, userID string, conferenceID string,
	fn func(state *ledgerState) model.RegistrationOutcome,
) (model.RegistrationOutcome, error) {
	outcome, err := RunAtomic(ctx, w.manager, func(ctx context.Context) (model.RegistrationOutcome, error) {
		state, found, err := w.load(ctx, userID, conferenceID)
		if err != nil {
			return 0, err
		}
		if !found {
			return model.RegistrationOutcomeConferenceNotFound, nil
		}

		outcome := fn(&state)
		if !outcome.Changed() {
			return outcome, nil
		}
		if err := w.commit(ctx, state); err != nil {
			return 0, err
		}
		return outcome, nil
	})
	if err != nil {
		return 0, err
	}

	w.metrics.incOutcome(outcome)
	return outcome, nil
}

// Register adds the conference to the user's attendance set and takes one seat
func (w *Workflow) Register(
	ctx context.Context, userID string, conferenceID string,
) (model.RegistrationOutcome, error) {
	return w.run(ctx, userID, conferenceID, func(state *ledgerState) model.RegistrationOutcome {
		if state.profile.Profile.Attends(conferenceID) {
			return model.RegistrationOutcomeAlreadyRegistered
		}

		if !state.conf.Uncapped() {
			if state.conf.SeatsAvailable <= 0 {
				return model.RegistrationOutcomeNoSeatsAvailable
			}
			state.conf.SeatsAvailable--
		}

		state.profile.Profile.AddConference(conferenceID)
		return model.RegistrationOutcomeRegistered
	})
}

// Unregister removes the conference from the user's attendance set and gives the seat back
func (w *Workflow) Unregister(
	ctx context.Context, userID string, conferenceID string,
) (model.RegistrationOutcome, error) {
	return w.run(ctx, userID, conferenceID, func(state *ledgerState) model.RegistrationOutcome {
		if !state.profile.Profile.RemoveConference(conferenceID) {
			return model.RegistrationOutcomeNotRegistered
		}

		if !state.conf.Uncapped() {
			state.conf.SeatsAvailable++
		}
		return model.RegistrationOutcomeUnregistered
	})
}
