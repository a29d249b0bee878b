package repository

import (
	"fmt"
	"strings"

	"github.com/QuangTung97/conference/model"
)

// SessionQuery is a conjunction of session filters with an ordered list of sort keys,
// it has the same range scan restriction as ConferenceQuery
type SessionQuery struct {
	Filters []model.SessionConstraint
	Orders  []model.SessionField
}

var sessionColumnNames = map[model.SessionField]string{
	model.SessionFieldName:       "s.name",
	model.SessionFieldSpeaker:    "s.speaker",
	model.SessionFieldDate:       "s.session_date",
	model.SessionFieldStartTime:  "s.start_time",
	model.SessionFieldConference: "s.conference_id",
}

const minSessionTypeExpr = `(SELECT MIN(st.type_name) FROM session_type st WHERE st.session_id = s.id)`

func (q SessionQuery) validate() error {
	fields := make([]model.SessionField, 0, len(q.Filters))
	operators := make([]model.FilterOperator, 0, len(q.Filters))
	for _, f := range q.Filters {
		fields = append(fields, f.Field)
		operators = append(operators, f.Operator)
	}
	return checkRangeScan(fields, operators, q.Orders)
}

func renderSessionPredicate(f model.SessionConstraint) (string, error) {
	op, ok := operatorSymbols[f.Operator]
	if !ok {
		return "", fmt.Errorf("%w: unknown operator %d", ErrInvalidQuery, f.Operator)
	}

	switch f.Field {
	case model.SessionFieldType:
		return `EXISTS (SELECT 1 FROM session_type st WHERE st.session_id = s.id AND st.type_name ` + op + ` ?)`, nil
	case model.SessionFieldWishlistUser:
		if f.Operator != model.FilterOperatorEq {
			return "", fmt.Errorf("%w: %s only supports equality", ErrInvalidQuery, f.Field)
		}
		return `EXISTS (SELECT 1 FROM wishlist w WHERE w.session_id = s.id AND w.user_id = ?)`, nil
	default:
	}

	column, ok := sessionColumnNames[f.Field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnindexedField, f.Field)
	}
	return column + " " + op + " ?", nil
}

func renderSessionOrder(field model.SessionField) (string, error) {
	if field == model.SessionFieldType {
		return minSessionTypeExpr, nil
	}
	column, ok := sessionColumnNames[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnindexedField, field)
	}
	return column, nil
}

// render returns the WHERE and ORDER BY part of the query
func (q SessionQuery) render() (string, []interface{}, error) {
	if err := q.validate(); err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	args := make([]interface{}, 0, len(q.Filters))

	for i, f := range q.Filters {
		predicate, err := renderSessionPredicate(f)
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
		order, err := renderSessionOrder(field)
		if err != nil {
			return "", nil, err
		}
		buf.WriteString(order)
		buf.WriteString(", ")
	}
	buf.WriteString("s.id")

	return buf.String(), args, nil
}
