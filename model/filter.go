package model

// ConferenceField is a conference property usable in a filter or as a sort key
type ConferenceField int

const (
	// ConferenceFieldName ...
	ConferenceFieldName ConferenceField = 1

	// ConferenceFieldCity ...
	ConferenceFieldCity ConferenceField = 2

	// ConferenceFieldTopic ...
	ConferenceFieldTopic ConferenceField = 3

	// ConferenceFieldMonth ...
	ConferenceFieldMonth ConferenceField = 4

	// ConferenceFieldMaxAttendees ...
	ConferenceFieldMaxAttendees ConferenceField = 5

	// ConferenceFieldSeatsAvailable ...
	ConferenceFieldSeatsAvailable ConferenceField = 6

	// ConferenceFieldOrganizer ...
	ConferenceFieldOrganizer ConferenceField = 7
)

func (f ConferenceField) String() string {
	switch f {
	case ConferenceFieldName:
		return "name"
	case ConferenceFieldCity:
		return "city"
	case ConferenceFieldTopic:
		return "topics"
	case ConferenceFieldMonth:
		return "month"
	case ConferenceFieldMaxAttendees:
		return "maxAttendees"
	case ConferenceFieldSeatsAvailable:
		return "seatsAvailable"
	case ConferenceFieldOrganizer:
		return "organizerUserId"
	default:
		return "unknown"
	}
}

// NullConferenceField ...
type NullConferenceField struct {
	Valid bool
	Field ConferenceField
}

// FilterOperator ...
type FilterOperator int

const (
	// FilterOperatorEq ...
	FilterOperatorEq FilterOperator = 1

	// FilterOperatorGt ...
	FilterOperatorGt FilterOperator = 2

	// FilterOperatorGte ...
	FilterOperatorGte FilterOperator = 3

	// FilterOperatorLt ...
	FilterOperatorLt FilterOperator = 4

	// FilterOperatorLte ...
	FilterOperatorLte FilterOperator = 5

	// FilterOperatorNe ...
	FilterOperatorNe FilterOperator = 6
)

// IsInequality reports whether the operator is anything but equality
func (o FilterOperator) IsInequality() bool {
	return o != FilterOperatorEq
}

// FilterConstraint is one normalized predicate, Value is a string or an int64
type FilterConstraint struct {
	Field    ConferenceField
	Operator FilterOperator
	Value    interface{}
}
