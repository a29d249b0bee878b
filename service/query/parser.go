package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/QuangTung97/conference/model"
)

// ErrInvalidFilter is returned for a filter with an unknown field or operator, or a non numeric value on a numeric field
var ErrInvalidFilter = errors.New("filter contains invalid field or operator")

// ErrMultipleInequalityFields is returned when inequality operators are applied on more than one field
var ErrMultipleInequalityFields = errors.New("inequality filter is allowed on only one field")

// RawFilter is a filter as received from the caller
type RawFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Plan is the normalized form of a filter list
type Plan struct {
	InequalityField model.NullConferenceField
	Constraints     []model.FilterConstraint
}

var wireFields = map[string]model.ConferenceField{
	"CITY":          model.ConferenceFieldCity,
	"TOPIC":         model.ConferenceFieldTopic,
	"MONTH":         model.ConferenceFieldMonth,
	"MAX_ATTENDEES": model.ConferenceFieldMaxAttendees,
}

var wireOperators = map[string]model.FilterOperator{
	"EQ":   model.FilterOperatorEq,
	"GT":   model.FilterOperatorGt,
	"GTEQ": model.FilterOperatorGte,
	"GTE":  model.FilterOperatorGte,
	"LT":   model.FilterOperatorLt,
	"LTEQ": model.FilterOperatorLte,
	"LTE":  model.FilterOperatorLte,
	"NE":   model.FilterOperatorNe,
}

func isNumericField(field model.ConferenceField) bool {
	switch field {
	case model.ConferenceFieldMonth, model.ConferenceFieldMaxAttendees, model.ConferenceFieldSeatsAvailable:
		return true
	default:
		return false
	}
}

func parseFilter(raw RawFilter) (model.FilterConstraint, error) {
	field, ok := wireFields[strings.ToUpper(strings.TrimSpace(raw.Field))]
	if !ok {
		return model.FilterConstraint{}, fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, raw.Field)
	}

	operator, ok := wireOperators[strings.ToUpper(strings.TrimSpace(raw.Operator))]
	if !ok {
		return model.FilterConstraint{}, fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, raw.Operator)
	}

	var value interface{} = raw.Value
	if isNumericField(field) {
		num, err := strconv.ParseInt(strings.TrimSpace(raw.Value), 10, 64)
		if err != nil {
			return model.FilterConstraint{}, fmt.Errorf("%w: %s value %q is not an integer", ErrInvalidFilter, field, raw.Value)
		}
		value = num
	}

	return model.FilterConstraint{
		Field:    field,
		Operator: operator,
		Value:    value,
	}, nil
}

// Parse validates and normalizes the raw filters, input order is kept and duplicates are allowed
func Parse(raws []RawFilter) (Plan, error) {
	constraints := make([]model.FilterConstraint, 0, len(raws))
	for _, raw := range raws {
		c, err := parseFilter(raw)
		if err != nil {
			return Plan{}, err
		}
		constraints = append(constraints, c)
	}
	return NewPlan(constraints...)
}

// NewPlan builds a plan from already typed constraints, used for queries that are not from the wire
func NewPlan(constraints ...model.FilterConstraint) (Plan, error) {
	plan := Plan{
		Constraints: constraints,
	}

	for _, c := range constraints {
		if !c.Operator.IsInequality() {
			continue
		}
		if plan.InequalityField.Valid && plan.InequalityField.Field != c.Field {
			return Plan{}, fmt.Errorf("%w: %s and %s",
				ErrMultipleInequalityFields, plan.InequalityField.Field, c.Field)
		}
		plan.InequalityField = model.NullConferenceField{Valid: true, Field: c.Field}
	}
	return plan, nil
}
