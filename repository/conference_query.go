package repository

import (
	"fmt"
	"strings"

	"github.com/QuangTung97/conference/model"
)

// ConferenceQuery is a conjunction of filters with an ordered list of sort keys.
// As with any range scan, at most one field may carry inequality filters
// and that field must be the first sort key.
type ConferenceQuery struct {
	Filters []model.FilterConstraint
	Orders  []model.ConferenceField
}

var conferenceColumnNames = map[model.ConferenceField]string{
	model.ConferenceFieldName:           "c.name",
	model.ConferenceFieldCity:           "c.city",
	model.ConferenceFieldMonth:          "c.month",
	model.ConferenceFieldMaxAttendees:   "c.max_attendees",
	model.ConferenceFieldSeatsAvailable: "c.seats_available",
	model.ConferenceFieldOrganizer:      "c.organizer_user_id",
}

var operatorSymbols = map[model.FilterOperator]string{
	model.FilterOperatorEq:  "=",
	model.FilterOperatorGt:  ">",
	model.FilterOperatorGte: ">=",
	model.FilterOperatorLt:  "<",
	model.FilterOperatorLte: "<=",
	model.FilterOperatorNe:  "<>",
}

const minTopicExpr = `(SELECT MIN(t.topic) FROM conference_topic t WHERE t.conference_id = c.id)`

func (q ConferenceQuery) validate() error {
	fields := make([]model.ConferenceField, 0, len(q.Filters))
	operators := make([]model.FilterOperator, 0, len(q.Filters))
	for _, f := range q.Filters {
		fields = append(fields, f.Field)
		operators = append(operators, f.Operator)
	}
	return checkRangeScan(fields, operators, q.Orders)
}

func renderPredicate(f model.FilterConstraint) (string, error) {
	op, ok := operatorSymbols[f.Operator]
	if !ok {
		return "", fmt.Errorf("%w: unknown operator %d", ErrInvalidQuery, f.Operator)
	}

	if f.Field == model.ConferenceFieldTopic {
		return `EXISTS (SELECT 1 FROM conference_topic t WHERE t.conference_id = c.id AND t.topic ` + op + ` ?)`, nil
	}

	column, ok := conferenceColumnNames[f.Field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnindexedField, f.Field)
	}
	return column + " " + op + " ?", nil
}

func renderOrder(field model.ConferenceField) (string, error) {
	if field == model.ConferenceFieldTopic {
		return minTopicExpr, nil
	}
	column, ok := conferenceColumnNames[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnindexedField, field)
	}
	return column, nil
}

// render returns the WHERE and ORDER BY part of the query
func (q ConferenceQuery) render() (string, []interface{}, error) {
	if err := q.validate(); err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	args := make([]interface{}, 0, len(q.Filters))

	for i, f := range q.Filters {
		predicate, err := renderPredicate(f)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		buf.WriteString(predicate)
		args = append(args, f.Value)
	}

	buf.WriteString(" ORDER BY ")
	for _, field := range q.Orders {
		order, err := renderOrder(field)
		if err != nil {
			return "", nil, err
		}
		buf.WriteString(order)
		buf.WriteString(", ")
	}
	// id keeps rows with identical sort keys in a stable order
	buf.WriteString("c.id")

	return buf.String(), args, nil
}
