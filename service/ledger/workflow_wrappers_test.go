package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/conference/model"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestIWorkflowWrapper(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	workflow := &IWorkflowMock{}
	workflow.RegisterFunc = func(ctx context.Context, userID string, conferenceID string) (model.RegistrationOutcome, error) {
		return model.RegistrationOutcomeRegistered, nil
	}
	workflow.UnregisterFunc = func(ctx context.Context, userID string, conferenceID string) (model.RegistrationOutcome, error) {
		return 0, ErrConcurrencyConflict
	}

	w := NewIWorkflowWrapper(workflow, provider.Tracer("ledger"), "ledger::")

	outcome, err := w.Register(newContext(), "user01", "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.RegistrationOutcomeRegistered, outcome)

	_, err = w.Unregister(newContext(), "user01", "conf01")
	assert.True(t, errors.Is(err, ErrConcurrencyConflict))

	spans := recorder.Ended()
	assert.Equal(t, 2, len(spans))
	assert.Equal(t, "ledger::Register", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "ledger::Unregister", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	calls := workflow.RegisterCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "user01", calls[0].UserID)
	assert.Equal(t, "conf01", calls[0].ConferenceID)
}
