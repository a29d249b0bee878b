package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type conferenceTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Conference
}

func newConferenceTest(t *testing.T) *conferenceTest {
	tc := integration.NewTestCase(t)
	return &conferenceTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewConference(),
	}
}

func newDate(s string) model.NullDate {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return model.NewNullDate(t)
}

func (c *conferenceTest) insert(t *testing.T, confs ...model.Conference) {
	err := c.provider.Transact(newContext(), func(ctx context.Context) error {
		for _, conf := range confs {
			if err := c.repo.InsertConference(ctx, conf); err != nil {
				return err
			}
		}
		return nil
	})
	require.Equal(t, nil, err)
}

func (c *conferenceTest) query(t *testing.T, q ConferenceQuery) []string {
	ctx := c.provider.Readonly(newContext())

	var ids []string
	for conf, err := range c.repo.QueryConferences(ctx, q) {
		require.Equal(t, nil, err)
		ids = append(ids, conf.ID)
	}
	return ids
}

func TestConference(t *testing.T) {
	c := newConferenceTest(t)
	readCtx := c.provider.Readonly(newContext())

	//---------------------------------------
	// Get Not Found
	//---------------------------------------
	conf, err := c.repo.GetConference(readCtx, "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullConference{}, conf)

	//---------------------------------------
	// Insert
	//---------------------------------------
	conf01 := model.Conference{
		ID:              "conf01",
		OrganizerUserID: "user01",
		Name:            "GopherCon",
		Description:     "some description",
		City:            "London",
		Topics:          model.TopicList{"Web Development", "Education", "Web Development"},
		StartDate:       newDate("2022-06-10"),
		EndDate:         newDate("2022-06-12"),
		Month:           6,
		MaxAttendees:    100,
		SeatsAvailable:  100,
	}
	c.insert(t, conf01)

	conf, err = c.repo.GetConference(readCtx, "conf01")
	assert.Equal(t, nil, err)

	conf01.Topics = model.TopicList{"Education", "Web Development"}
	assert.Equal(t, model.NullConference{Valid: true, Conference: conf01}, conf)

	//---------------------------------------
	// Update Seats
	//---------------------------------------
	conf01.SeatsAvailable = 99
	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.repo.UpdateSeats(ctx, conf01)
	})
	assert.Equal(t, nil, err)

	conf, err = c.repo.GetConference(readCtx, "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(99), conf.Conference.SeatsAvailable)
	assert.Equal(t, int64(1), conf.Conference.Version)

	//---------------------------------------
	// Update Seats With Stale Version
	//---------------------------------------
	conf01.SeatsAvailable = 98
	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.repo.UpdateSeats(ctx, conf01)
	})
	assert.True(t, errors.Is(err, ErrConflict))

	//---------------------------------------
	// Update Conference
	//---------------------------------------
	conf01 = conf.Conference
	conf01.Name = "GopherCon EU"
	conf01.City = "Berlin"
	conf01.Topics = model.TopicList{"Go"}
	conf01.EndDate = model.NullDate{}

	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.repo.UpdateConference(ctx, conf01)
	})
	assert.Equal(t, nil, err)

	conf, err = c.repo.GetConference(readCtx, "conf01")
	assert.Equal(t, nil, err)

	conf01.Version = 2
	assert.Equal(t, model.NullConference{Valid: true, Conference: conf01}, conf)
}

func TestConference_GetConferences_And_CountAttendees(t *testing.T) {
	c := newConferenceTest(t)
	readCtx := c.provider.Readonly(newContext())

	c.insert(t,
		model.Conference{ID: "conf01", Name: "B conf"},
		model.Conference{ID: "conf02", Name: "A conf"},
		model.Conference{ID: "conf03", Name: "C conf"},
	)

	confs, err := c.repo.GetConferences(readCtx, []string{"conf01", "conf02", "not-found"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(confs))
	assert.Equal(t, "conf02", confs[0].ID)
	assert.Equal(t, "conf01", confs[1].ID)

	confs, err = c.repo.GetConferences(readCtx, nil)
	assert.Equal(t, nil, err)
	assert.Nil(t, confs)

	profileRepo := NewProfile()
	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		p1 := newProfile("user01")
		p1.ConferenceKeysToAttend = []string{"conf01", "conf02"}
		p2 := newProfile("user02")
		p2.ConferenceKeysToAttend = []string{"conf01"}

		if err := profileRepo.InsertProfile(ctx, p1); err != nil {
			return err
		}
		return profileRepo.InsertProfile(ctx, p2)
	})
	assert.Equal(t, nil, err)

	count, err := c.repo.CountAttendees(readCtx, "conf01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	count, err = c.repo.CountAttendees(readCtx, "conf03")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)
}

func insertQueryFixtures(t *testing.T, c *conferenceTest) {
	c.insert(t,
		model.Conference{
			ID: "c1", Name: "Alpha", City: "London", Month: 2,
			Topics: model.TopicList{"Medical Innovations"}, MaxAttendees: 10, SeatsAvailable: 3,
		},
		model.Conference{
			ID: "c2", Name: "Bravo", City: "London", Month: 6,
			Topics: model.TopicList{"Web Development", "Education"}, MaxAttendees: 20, SeatsAvailable: 0,
		},
		model.Conference{
			ID: "c3", Name: "Charlie", City: "Paris", Month: 4,
			Topics: model.TopicList{"Medical Innovations", "Programming"}, MaxAttendees: 0, SeatsAvailable: 0,
		},
		model.Conference{
			ID: "c4", Name: "Delta", City: "London", Month: 4,
			Topics: model.TopicList{"Art"}, MaxAttendees: 50, SeatsAvailable: 5,
		},
	)
}

func TestConference_QueryConferences(t *testing.T) {
	c := newConferenceTest(t)
	insertQueryFixtures(t, c)

	//---------------------------------------
	// No Filters, Ordered By Name
	//---------------------------------------
	ids := c.query(t, ConferenceQuery{
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	})
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids)

	//---------------------------------------
	// Equality And Inequality
	//---------------------------------------
	ids = c.query(t, ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldCity, Operator: model.FilterOperatorEq, Value: "London"},
			{Field: model.ConferenceFieldMonth, Operator: model.FilterOperatorGt, Value: int64(3)},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldMonth, model.ConferenceFieldName},
	})
	assert.Equal(t, []string{"c4", "c2"}, ids)

	//---------------------------------------
	// Topic Equality Matches Any Topic
	//---------------------------------------
	ids = c.query(t, ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldTopic, Operator: model.FilterOperatorEq, Value: "Medical Innovations"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	})
	assert.Equal(t, []string{"c1", "c3"}, ids)

	//---------------------------------------
	// Topic Inequality Ordered By Smallest Topic
	//---------------------------------------
	ids = c.query(t, ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldTopic, Operator: model.FilterOperatorLt, Value: "N"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldTopic, model.ConferenceFieldName},
	})
	assert.Equal(t, []string{"c4", "c2", "c1", "c3"}, ids)

	//---------------------------------------
	// Range On Seats Available
	//---------------------------------------
	ids = c.query(t, ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldSeatsAvailable, Operator: model.FilterOperatorGt, Value: int64(0)},
			{Field: model.ConferenceFieldSeatsAvailable, Operator: model.FilterOperatorLte, Value: int64(5)},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldSeatsAvailable, model.ConferenceFieldName},
	})
	assert.Equal(t, []string{"c1", "c4"}, ids)
}

func TestConference_QueryConferences__Restartable_And_Early_Stop(t *testing.T) {
	c := newConferenceTest(t)
	insertQueryFixtures(t, c)

	ctx := c.provider.Readonly(newContext())
	seq := c.repo.QueryConferences(ctx, ConferenceQuery{
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	})

	var first []string
	for conf, err := range seq {
		require.Equal(t, nil, err)
		first = append(first, conf.ID)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"c1", "c2"}, first)

	var second []string
	for conf, err := range seq {
		require.Equal(t, nil, err)
		second = append(second, conf.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, second)
}

func TestConference_QueryConferences__Invalid_Query(t *testing.T) {
	c := newConferenceTest(t)
	ctx := c.provider.Readonly(newContext())

	seq := c.repo.QueryConferences(ctx, ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldMonth, Operator: model.FilterOperatorGt, Value: int64(3)},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	})

	var errs []error
	for _, err := range seq {
		errs = append(errs, err)
	}
	assert.Equal(t, 1, len(errs))
	assert.True(t, errors.Is(errs[0], ErrInvalidQuery))
}
