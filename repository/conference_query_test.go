package repository

import (
	"errors"
	"testing"

	"github.com/QuangTung97/conference/model"
	"github.com/stretchr/testify/assert"
)

func TestConferenceQuery_Render__Equality_Only(t *testing.T) {
	q := ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldCity, Operator: model.FilterOperatorEq, Value: "London"},
			{Field: model.ConferenceFieldTopic, Operator: model.FilterOperatorEq, Value: "Go"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	}

	where, args, err := q.render()
	assert.Equal(t, nil, err)
	assert.Equal(t,
		" WHERE c.city = ?"+
			" AND EXISTS (SELECT 1 FROM conference_topic t WHERE t.conference_id = c.id AND t.topic = ?)"+
			" ORDER BY c.name, c.id",
		where)
	assert.Equal(t, []interface{}{"London", "Go"}, args)
}

func TestConferenceQuery_Render__Inequality(t *testing.T) {
	q := ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldMonth, Operator: model.FilterOperatorGte, Value: int64(3)},
			{Field: model.ConferenceFieldMonth, Operator: model.FilterOperatorNe, Value: int64(5)},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldMonth, model.ConferenceFieldName},
	}

	where, args, err := q.render()
	assert.Equal(t, nil, err)
	assert.Equal(t, " WHERE c.month >= ? AND c.month <> ? ORDER BY c.month, c.name, c.id", where)
	assert.Equal(t, []interface{}{int64(3), int64(5)}, args)
}

func TestConferenceQuery_Render__Topic_Order(t *testing.T) {
	q := ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldTopic, Operator: model.FilterOperatorGt, Value: "A"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldTopic, model.ConferenceFieldName},
	}

	where, _, err := q.render()
	assert.Equal(t, nil, err)
	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM conference_topic t WHERE t.conference_id = c.id AND t.topic > ?)"+
			" ORDER BY "+minTopicExpr+", c.name, c.id",
		where)
}

func TestConferenceQuery_Render__Errors(t *testing.T) {
	// two inequality fields
	_, _, err := ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldCity, Operator: model.FilterOperatorGt, Value: "A"},
			{Field: model.ConferenceFieldTopic, Operator: model.FilterOperatorLt, Value: "Z"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldCity},
	}.render()
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	// inequality field is not the first order
	_, _, err = ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceFieldMonth, Operator: model.FilterOperatorLt, Value: int64(3)},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldName, model.ConferenceFieldMonth},
	}.render()
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	// unknown field
	_, _, err = ConferenceQuery{
		Filters: []model.FilterConstraint{
			{Field: model.ConferenceField(99), Operator: model.FilterOperatorEq, Value: "x"},
		},
		Orders: []model.ConferenceField{model.ConferenceFieldName},
	}.render()
	assert.True(t, errors.Is(err, ErrUnindexedField))

	// unknown order field
	_, _, err = ConferenceQuery{
		Orders: []model.ConferenceField{model.ConferenceField(99)},
	}.render()
	assert.True(t, errors.Is(err, ErrUnindexedField))
}
