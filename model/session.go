package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// SessionField is a session property usable in a filter or as a sort key
type SessionField int

const (
	// SessionFieldName ...
	SessionFieldName SessionField = 1

	// SessionFieldSpeaker ...
	SessionFieldSpeaker SessionField = 2

	// SessionFieldType ...
	SessionFieldType SessionField = 3

	// SessionFieldDate ...
	SessionFieldDate SessionField = 4

	// SessionFieldStartTime ...
	SessionFieldStartTime SessionField = 5

	// SessionFieldConference ...
	SessionFieldConference SessionField = 6

	// SessionFieldWishlistUser matches sessions in the wishlist of the user given as value
	SessionFieldWishlistUser SessionField = 7
)

func (f SessionField) String() string {
	switch f {
	case SessionFieldName:
		return "name"
	case SessionFieldSpeaker:
		return "speaker"
	case SessionFieldType:
		return "typeOfSession"
	case SessionFieldDate:
		return "date"
	case SessionFieldStartTime:
		return "startTime"
	case SessionFieldConference:
		return "conference"
	case SessionFieldWishlistUser:
		return "wishlistUser"
	default:
		return "unknown"
	}
}

// SessionConstraint is one session predicate, Value is a string or an int64
type SessionConstraint struct {
	Field    SessionField
	Operator FilterOperator
	Value    interface{}
}

// Session is a talk or workshop inside a conference
type Session struct {
	ID              string `db:"id"`
	ConferenceID    string `db:"conference_id"`
	Name            string `db:"name"`
	Highlights      string `db:"highlights"`
	Speaker         string `db:"speaker"`
	DurationMinutes int64  `db:"duration_minutes"`

	TypesOfSession TopicList `db:"types"`
	Date           NullDate  `db:"session_date"`
	StartTime      NullClock `db:"start_time"`
}

// NullSession ...
type NullSession struct {
	Valid   bool
	Session Session
}

// HasType reports whether the session has the type, ignoring case
func (s Session) HasType(typeOfSession string) bool {
	for _, t := range s.TypesOfSession {
		if strings.EqualFold(t, typeOfSession) {
			return true
		}
	}
	return false
}

// ClockLayout is the wire layout of session start times
const ClockLayout = "15:04"

// NullClock is a time of day stored as minutes after midnight
type NullClock struct {
	Valid   bool
	Minutes int64
}

// NewNullClock ...
func NewNullClock(hour int, minute int) NullClock {
	return NullClock{
		Valid:   true,
		Minutes: int64(hour*60 + minute),
	}
}

// ParseNullClock parses HH:MM, empty string gives an invalid clock
func ParseNullClock(s string) (NullClock, error) {
	if s == "" {
		return NullClock{}, nil
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return NullClock{}, err
	}
	return NewNullClock(t.Hour(), t.Minute()), nil
}

// String returns HH:MM or empty string
func (c NullClock) String() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Minutes/60, c.Minutes%60)
}

// Scan implements sql.Scanner
func (c *NullClock) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = NullClock{}
		return nil
	case int64:
		*c = NullClock{Valid: true, Minutes: v}
		return nil
	case []byte:
		var minutes int64
		if _, err := fmt.Sscan(string(v), &minutes); err != nil {
			return fmt.Errorf("NullClock: %w", err)
		}
		*c = NullClock{Valid: true, Minutes: minutes}
		return nil
	default:
		return fmt.Errorf("NullClock: cannot scan %T", src)
	}
}

// Value implements driver.Valuer
func (c NullClock) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Minutes, nil
}
