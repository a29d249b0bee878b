package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/integration"
	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type workflowTest struct {
	provider    repository.Provider
	confRepo    repository.Conference
	profileRepo repository.Profile
	metrics     *Metrics
	workflow    *Workflow
}

func newWorkflowTest(t *testing.T) *workflowTest {
	return newWorkflowTestOn(integration.NewTestCase(t), 3)
}

func newWorkflowTestOn(tc *integration.TestCase, maxRetries int) *workflowTest {
	provider := repository.NewProvider(tc.DB)
	confRepo := repository.NewConference()
	profileRepo := repository.NewProfile()
	metrics := NewMetrics(prometheus.NewRegistry())

	return &workflowTest{
		provider:    provider,
		confRepo:    confRepo,
		profileRepo: profileRepo,
		metrics:     metrics,
		workflow:    NewWorkflow(NewManager(provider, maxRetries, metrics), confRepo, profileRepo, metrics),
	}
}

func (w *workflowTest) insertConference(t *testing.T, id string, maxAttendees int64, seats int64) {
	err := w.provider.Transact(newContext(), func(ctx context.Context) error {
		return w.confRepo.InsertConference(ctx, model.Conference{
			ID:             id,
			Name:           "Conference " + id,
			MaxAttendees:   maxAttendees,
			SeatsAvailable: seats,
		})
	})
	require.Equal(t, nil, err)
}

func (w *workflowTest) getConference(t *testing.T, id string) model.Conference {
	conf, err := w.confRepo.GetConference(w.provider.Readonly(newContext()), id)
	require.Equal(t, nil, err)
	require.Equal(t, true, conf.Valid)
	return conf.Conference
}

func (w *workflowTest) getProfile(t *testing.T, id string) model.NullProfile {
	profile, err := w.profileRepo.GetProfile(w.provider.Readonly(newContext()), id)
	require.Equal(t, nil, err)
	return profile
}

func (w *workflowTest) outcomeCount(outcome model.RegistrationOutcome) float64 {
	return testutil.ToFloat64(w.metrics.outcomes.WithLabelValues(outcome.String()))
}

func TestWorkflow_Register__Idempotent(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 10)

	outcome, err := w.workflow.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)

	outcome, err = w.workflow.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeAlreadyRegistered, outcome)

	assert.Equal(t, int64(9), w.getConference(t, "conf01").SeatsAvailable)

	profile := w.getProfile(t, "user01")
	assert.Equal(t, true, profile.Valid)
	assert.Equal(t, []string{"conf01"}, profile.Profile.ConferenceKeysToAttend)
	assert.Equal(t, model.TeeShirtSizeNotSpecified, profile.Profile.TeeShirtSize)

	assert.Equal(t, float64(1), w.outcomeCount(model.RegistrationOutcomeRegistered))
	assert.Equal(t, float64(1), w.outcomeCount(model.RegistrationOutcomeAlreadyRegistered))
}

func TestWorkflow_Unregister__Not_Registered(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 7)

	outcome, err := w.workflow.Unregister(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeNotRegistered, outcome)

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(7), conf.SeatsAvailable)
	assert.Equal(t, int64(0), conf.Version)

	// no profile is created without a mutation
	assert.Equal(t, false, w.getProfile(t, "user01").Valid)
}

func TestWorkflow__Register_Then_Unregister(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 4)
	w.insertConference(t, "conf02", 10, 10)

	outcome, err := w.workflow.Register(newContext(), "user01", "conf02")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)

	outcome, err = w.workflow.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)
	assert.Equal(t, int64(3), w.getConference(t, "conf01").SeatsAvailable)

	outcome, err = w.workflow.Unregister(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeUnregistered, outcome)

	assert.Equal(t, int64(4), w.getConference(t, "conf01").SeatsAvailable)
	assert.Equal(t, int64(9), w.getConference(t, "conf02").SeatsAvailable)
	assert.Equal(t, []string{"conf02"}, w.getProfile(t, "user01").Profile.ConferenceKeysToAttend)

	outcome, err = w.workflow.Unregister(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeNotRegistered, outcome)
}

func TestWorkflow_Register__No_Seats(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 0)

	outcome, err := w.workflow.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeNoSeatsAvailable, outcome)

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(0), conf.SeatsAvailable)
	assert.Equal(t, int64(0), conf.Version)
	assert.Equal(t, false, w.getProfile(t, "user01").Valid)
}

func TestWorkflow_Register__Uncapped(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 0, 0)

	for _, user := range []string{"user01", "user02", "user03"} {
		outcome, err := w.workflow.Register(newContext(), user, "conf01")
		assert.Equal(t, nil, err)
		assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)
	}

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(0), conf.SeatsAvailable)
	assert.Equal(t, int64(3), conf.Version)

	outcome, err := w.workflow.Unregister(newContext(), "user02", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeUnregistered, outcome)
	assert.Equal(t, int64(0), w.getConference(t, "conf01").SeatsAvailable)

	count, err := w.confRepo.CountAttendees(w.provider.Readonly(newContext()), "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)
}

func TestWorkflow__Conference_Not_Found(t *testing.T) {
	w := newWorkflowTest(t)

	outcome, err := w.workflow.Register(newContext(), "user01", "not-found")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeConferenceNotFound, outcome)

	outcome, err = w.workflow.Unregister(newContext(), "user01", "not-found")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeConferenceNotFound, outcome)

	assert.Equal(t, false, w.getProfile(t, "user01").Valid)
	assert.Equal(t, float64(2), w.outcomeCount(model.RegistrationOutcomeConferenceNotFound))
}

func TestWorkflow_Register__Concurrent_Calls_Limited_Seats(t *testing.T) {
	w := newWorkflowTest(t)

	const numCalls = 20
	const numSeats = 5
	w.insertConference(t, "conf01", 50, numSeats)

	outcomes := make([]model.RegistrationOutcome, numCalls)
	errs := make([]error, numCalls)

	var wg sync.WaitGroup
	wg.Add(numCalls)
	for i := 0; i < numCalls; i++ {
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = w.workflow.Register(newContext(), fmt.Sprintf("user%02d", i), "conf01")
		}(i)
	}
	wg.Wait()

	counts := map[model.RegistrationOutcome]int{}
	for i := range outcomes {
		assert.Equal(t, nil, errs[i])
		counts[outcomes[i]]++
	}
	assert.Equal(t, map[model.RegistrationOutcome]int{
		model.RegistrationOutcomeRegistered:       numSeats,
		model.RegistrationOutcomeNoSeatsAvailable: numCalls - numSeats,
	}, counts)

	assert.Equal(t, int64(0), w.getConference(t, "conf01").SeatsAvailable)

	count, err := w.confRepo.CountAttendees(w.provider.Readonly(newContext()), "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(numSeats), count)
}

func TestWorkflow_Register__Stale_Read_Is_Retried_Atomically(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 10)

	// the first read returns a stale version so the seat update conflicts
	confRepo := &repository.ConferenceMock{}
	reads := 0
	confRepo.GetConferenceFunc = func(ctx context.Context, id string) (model.NullConference, error) {
		reads++
		conf, err := w.confRepo.GetConference(ctx, id)
		if reads == 1 {
			conf.Conference.Version += 100
		}
		return conf, err
	}
	confRepo.UpdateSeatsFunc = w.confRepo.UpdateSeats

	workflow := NewWorkflow(NewManager(w.provider, 3, w.metrics), confRepo, w.profileRepo, w.metrics)

	outcome, err := workflow.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)

	assert.Equal(t, 2, reads)
	assert.Equal(t, 2, len(confRepo.UpdateSeatsCalls()))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.retries))

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(9), conf.SeatsAvailable)
	assert.Equal(t, int64(1), conf.Version)
	assert.Equal(t, []string{"conf01"}, w.getProfile(t, "user01").Profile.ConferenceKeysToAttend)
}

func TestWorkflow_Register__Conflict_Exhausted(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 10, 10)

	confRepo := &repository.ConferenceMock{}
	confRepo.GetConferenceFunc = func(ctx context.Context, id string) (model.NullConference, error) {
		conf, err := w.confRepo.GetConference(ctx, id)
		conf.Conference.Version += 100
		return conf, err
	}
	confRepo.UpdateSeatsFunc = w.confRepo.UpdateSeats

	workflow := NewWorkflow(NewManager(w.provider, 2, w.metrics), confRepo, w.profileRepo, w.metrics)

	_, err := workflow.Register(newContext(), "user01", "conf01")
	assert.True(t, errors.Is(err, ErrConcurrencyConflict))
	assert.Equal(t, 3, len(confRepo.UpdateSeatsCalls()))

	// every attempt rolled back
	assert.Equal(t, int64(10), w.getConference(t, "conf01").SeatsAvailable)
	assert.Equal(t, false, w.getProfile(t, "user01").Valid)
}

func TestWorkflow_Unregister__Invariant_Breach(t *testing.T) {
	w := newWorkflowTest(t)
	w.insertConference(t, "conf01", 2, 2)

	// attendance recorded without taking a seat
	err := w.provider.Transact(newContext(), func(ctx context.Context) error {
		profile := model.NewProfile("user01")
		profile.ConferenceKeysToAttend = []string{"conf01"}
		return w.profileRepo.InsertProfile(ctx, profile)
	})
	require.Equal(t, nil, err)

	core, logs := observer.New(zap.ErrorLevel)
	ctx := otellib.ToContext(newContext(), zap.New(core))

	_, err = w.workflow.Unregister(ctx, "user01", "conf01")
	assert.True(t, errors.Is(err, ErrLedgerInvariant))
	assert.False(t, errors.Is(err, ErrConcurrencyConflict))

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "ledger invariant violated", logs.All()[0].Message)
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.breaches))

	assert.Equal(t, int64(2), w.getConference(t, "conf01").SeatsAvailable)
	assert.Equal(t, []string{"conf01"}, w.getProfile(t, "user01").Profile.ConferenceKeysToAttend)
}

func (w *workflowTest) registerConcurrently(
	workflow IWorkflow, numCalls int, conferenceID string,
) map[model.RegistrationOutcome]int {
	outcomes := make([]model.RegistrationOutcome, numCalls)
	errs := make([]error, numCalls)

	var wg sync.WaitGroup
	wg.Add(numCalls)
	for i := 0; i < numCalls; i++ {
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = workflow.Register(newContext(), fmt.Sprintf("user%02d", i), conferenceID)
		}(i)
	}
	wg.Wait()

	counts := map[model.RegistrationOutcome]int{}
	for i := range outcomes {
		if errs[i] != nil {
			counts[0]++
			continue
		}
		counts[outcomes[i]]++
	}
	return counts
}

func TestWorkflow_Register__Overlapping_Transactions_Conflict_And_Retry(t *testing.T) {
	w := newWorkflowTestOn(integration.NewTestCaseWithConns(t, 2), 100)
	w.insertConference(t, "conf01", 1, 1)

	var reads int32
	var firstReads sync.WaitGroup
	firstReads.Add(2)

	// both first attempts read the conference before either of them writes
	confRepo := &repository.ConferenceMock{
		GetConferenceFunc: func(ctx context.Context, id string) (model.NullConference, error) {
			conf, err := w.confRepo.GetConference(ctx, id)
			if atomic.AddInt32(&reads, 1) <= 2 {
				firstReads.Done()
				firstReads.Wait()
			}
			return conf, err
		},
		UpdateSeatsFunc: w.confRepo.UpdateSeats,
	}
	workflow := NewWorkflow(NewManager(w.provider, 100, w.metrics), confRepo, w.profileRepo, w.metrics)

	counts := w.registerConcurrently(workflow, 2, "conf01")
	assert.Equal(t, map[model.RegistrationOutcome]int{
		model.RegistrationOutcomeRegistered:       1,
		model.RegistrationOutcomeNoSeatsAvailable: 1,
	}, counts)

	// the loser's write hit the store lock or a stale snapshot
	retries := testutil.ToFloat64(w.metrics.retries)
	assert.GreaterOrEqual(t, retries, float64(1))
	assert.Equal(t, int64(retries)+2, int64(atomic.LoadInt32(&reads)))

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(0), conf.SeatsAvailable)
	assert.Equal(t, int64(1), conf.Version)
}

func TestWorkflow_Register__Concurrent_Calls_Limited_Seats__Many_Connections(t *testing.T) {
	const numCalls = 20
	const numSeats = 5

	// a retry bound above any reachable conflict count, with a small bound some callers
	// get ErrConcurrencyConflict instead of an outcome
	w := newWorkflowTestOn(integration.NewTestCaseWithConns(t, 4), 1000)
	w.insertConference(t, "conf01", 50, numSeats)

	counts := w.registerConcurrently(w.workflow, numCalls, "conf01")
	assert.Equal(t, map[model.RegistrationOutcome]int{
		model.RegistrationOutcomeRegistered:       numSeats,
		model.RegistrationOutcomeNoSeatsAvailable: numCalls - numSeats,
	}, counts)
	t.Logf("retries: %v", testutil.ToFloat64(w.metrics.retries))

	conf := w.getConference(t, "conf01")
	assert.Equal(t, int64(0), conf.SeatsAvailable)
	assert.Equal(t, int64(numSeats), conf.Version)

	count, err := w.confRepo.CountAttendees(w.provider.Readonly(newContext()), "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(numSeats), count)
}
