package announcement

import (
	"context"
	"sort"
	"strings"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/service/query"
	"go.uber.org/zap"
)

// Key is the cache key of the announcement
const Key = "RECENT_ANNOUNCEMENTS"

const messagePrefix = "Last chance to attend! The following conferences are nearly sold out: "

// nearlySoldOutSeats is the largest number of remaining seats that is announced
const nearlySoldOutSeats = 5

//go:generate moq -out cache_mock.go . Cache

// Cache is a string cache, its failures only cost latency
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl uint32) error
	Delete(ctx context.Context, key string) error
}

// Service ...
type Service struct {
	query *query.Service
	cache Cache
	ttl   uint32
}

// NewService ...
func NewService(querySvc *query.Service, cache Cache, ttl uint32) *Service {
	return &Service{
		query: querySvc,
		cache: cache,
		ttl:   ttl,
	}
}

func nearlySoldOutPlan() query.Plan {
	plan, err := query.NewPlan(
		model.FilterConstraint{
			Field: model.ConferenceFieldSeatsAvailable, Operator: model.FilterOperatorGt, Value: int64(0),
		},
		model.FilterConstraint{
			Field: model.ConferenceFieldSeatsAvailable, Operator: model.FilterOperatorLte, Value: int64(nearlySoldOutSeats),
		},
	)
	if err != nil {
		panic(err)
	}
	return plan
}

// Refresh recomputes the announcement and stores it, an empty announcement removes the cache entry
func (s *Service) Refresh(ctx context.Context) (string, error) {
	confs, err := query.Collect(s.query.Query(ctx, nearlySoldOutPlan()))
	if err != nil {
		return "", err
	}

	logger := otellib.Extract(ctx)
	if len(confs) == 0 {
		if err := s.cache.Delete(ctx, Key); err != nil {
			logger.Warn("delete announcement", zap.Error(err))
		}
		return "", nil
	}

	names := make([]string, 0, len(confs))
	for _, conf := range confs {
		names = append(names, conf.Name)
	}
	sort.Strings(names)

	announcement := messagePrefix + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, Key, announcement, s.ttl); err != nil {
		logger.Warn("set announcement", zap.Error(err))
	}
	return announcement, nil
}

// Get returns the cached announcement, computing it on a cache miss
func (s *Service) Get(ctx context.Context) (string, error) {
	announcement, ok, err := s.cache.Get(ctx, Key)
	if err != nil {
		otellib.Extract(ctx).Warn("get announcement", zap.Error(err))
	} else if ok {
		return announcement, nil
	}
	return s.Refresh(ctx)
}
