package query

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/repository"
)

// ErrQueryExecution is returned when the store fails to run a compiled query
var ErrQueryExecution = errors.New("query execution failed")

// Compile turns a plan into a store query.
// The inequality field, if any, is the first sort key and the name is always the last one.
func Compile(plan Plan) repository.ConferenceQuery {
	orders := make([]model.ConferenceField, 0, 2)
	if plan.InequalityField.Valid && plan.InequalityField.Field != model.ConferenceFieldName {
		orders = append(orders, plan.InequalityField.Field)
	}
	orders = append(orders, model.ConferenceFieldName)

	return repository.ConferenceQuery{
		Filters: plan.Constraints,
		Orders:  orders,
	}
}

// Service runs compiled queries against the conference store
type Service struct {
	provider repository.Provider
	confRepo repository.Conference
}

// NewService ...
func NewService(provider repository.Provider, confRepo repository.Conference) *Service {
	return &Service{
		provider: provider,
		confRepo: confRepo,
	}
}

// Query returns a lazy sequence of matching conferences, each range over it runs the query again
func (s *Service) Query(ctx context.Context, plan Plan) iter.Seq2[model.Conference, error] {
	q := Compile(plan)
	return func(yield func(model.Conference, error) bool) {
		readCtx := s.provider.Readonly(ctx)
		for conf, err := range s.confRepo.QueryConferences(readCtx, q) {
			if err != nil {
				yield(model.Conference{}, fmt.Errorf("%w: %w", ErrQueryExecution, err))
				return
			}
			if !yield(conf, nil) {
				return
			}
		}
	}
}

// QueryFilters parses the raw filters then runs them, parse errors are returned before any store access
func (s *Service) QueryFilters(ctx context.Context, raws []RawFilter) ([]model.Conference, error) {
	plan, err := Parse(raws)
	if err != nil {
		return nil, err
	}
	return Collect(s.Query(ctx, plan))
}

// Collect consumes the whole sequence
func Collect(seq iter.Seq2[model.Conference, error]) ([]model.Conference, error) {
	var result []model.Conference
	for conf, err := range seq {
		if err != nil {
			return nil, err
		}
		result = append(result, conf)
	}
	return result, nil
}
