package model

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Conference ...
type Conference struct {
	ID              string `db:"id"`
	OrganizerUserID string `db:"organizer_user_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	City            string `db:"city"`

	Topics    TopicList `db:"topics"`
	StartDate NullDate  `db:"start_date"`
	EndDate   NullDate  `db:"end_date"`
	Month     int64     `db:"month"`

	MaxAttendees   int64 `db:"max_attendees"`
	SeatsAvailable int64 `db:"seats_available"`

	Version int64 `db:"version"`
}

// NullConference ...
type NullConference struct {
	Valid      bool
	Conference Conference
}

// Uncapped reports whether the conference has no attendee limit (maxAttendees == 0)
func (c Conference) Uncapped() bool {
	return c.MaxAttendees == 0
}

// CheckLedger returns an error if the seat counters are outside their allowed range
func (c Conference) CheckLedger() error {
	if c.SeatsAvailable < 0 {
		return fmt.Errorf("conference %s: seats available %d is negative", c.ID, c.SeatsAvailable)
	}
	if !c.Uncapped() && c.SeatsAvailable > c.MaxAttendees {
		return fmt.Errorf("conference %s: seats available %d exceeds max attendees %d",
			c.ID, c.SeatsAvailable, c.MaxAttendees)
	}
	return nil
}

// DateLayout is the wire and storage layout of conference dates
const DateLayout = "2006-01-02"

// NullDate is a calendar date stored as a YYYY-MM-DD string
type NullDate struct {
	Valid bool
	Time  time.Time
}

// NewNullDate ...
func NewNullDate(t time.Time) NullDate {
	y, m, d := t.Date()
	return NullDate{
		Valid: true,
		Time:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// ParseNullDate parses the first 10 characters of s as YYYY-MM-DD, empty string gives an invalid date
func ParseNullDate(s string) (NullDate, error) {
	if s == "" {
		return NullDate{}, nil
	}
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return NullDate{}, err
	}
	return NewNullDate(t), nil
}

// String returns YYYY-MM-DD or empty string
func (d NullDate) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// Scan implements sql.Scanner
func (d *NullDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = NullDate{}
		return nil
	case time.Time:
		*d = NewNullDate(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("NullDate: cannot scan %T", src)
	}
}

func (d *NullDate) scanString(s string) error {
	parsed, err := ParseNullDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d NullDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}

// TopicList is the multi-valued topics property, read back as a comma separated aggregate
type TopicList []string

// Scan implements sql.Scanner
func (l *TopicList) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("TopicList: cannot scan %T", src)
	}
	if s == "" {
		*l = nil
		return nil
	}

	topics := strings.Split(s, ",")
	sort.Strings(topics)
	*l = topics
	return nil
}
