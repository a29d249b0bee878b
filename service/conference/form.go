package conference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/QuangTung97/conference/model"
)

// ConferenceForm is the outbound representation of a conference
type ConferenceForm struct {
	WebsafeKey           string   `json:"websafeKey"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	OrganizerUserID      string   `json:"organizerUserId"`
	OrganizerDisplayName string   `json:"organizerDisplayName"`
	Topics               []string `json:"topics"`
	City                 string   `json:"city"`
	StartDate            string   `json:"startDate"`
	EndDate              string   `json:"endDate"`
	Month                int64    `json:"month"`
	MaxAttendees         int64    `json:"maxAttendees"`
	SeatsAvailable       int64    `json:"seatsAvailable"`
}

// ConferenceInput contains the fields a caller can write, a nil field is not supplied
type ConferenceInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	MaxAttendees *int64   `json:"maxAttendees"`
}

// ProfileForm is the outbound representation of a profile
type ProfileForm struct {
	DisplayName            string   `json:"displayName"`
	MainEmail              string   `json:"mainEmail"`
	TeeShirtSize           string   `json:"teeShirtSize"`
	ConferenceKeysToAttend []string `json:"conferenceKeysToAttend"`
}

// ProfileInput contains the fields a user can change on the own profile
type ProfileInput struct {
	DisplayName  *string `json:"displayName"`
	TeeShirtSize *string `json:"teeShirtSize"`
}

const defaultCity = "Default City"

var defaultTopics = []string{"Web Development", "Education"}

func toConferenceForm(conf model.Conference, displayName string) ConferenceForm {
	topics := []string(conf.Topics)
	if topics == nil {
		topics = []string{}
	}
	return ConferenceForm{
		WebsafeKey:           conf.ID,
		Name:                 conf.Name,
		Description:          conf.Description,
		OrganizerUserID:      conf.OrganizerUserID,
		OrganizerDisplayName: displayName,
		Topics:               topics,
		City:                 conf.City,
		StartDate:            conf.StartDate.String(),
		EndDate:              conf.EndDate.String(),
		Month:                conf.Month,
		MaxAttendees:         conf.MaxAttendees,
		SeatsAvailable:       conf.SeatsAvailable,
	}
}

func toProfileForm(profile model.Profile) ProfileForm {
	keys := profile.ConferenceKeysToAttend
	if keys == nil {
		keys = []string{}
	}
	return ProfileForm{
		DisplayName:            profile.DisplayName,
		MainEmail:              profile.MainEmail,
		TeeShirtSize:           string(profile.TeeShirtSize),
		ConferenceKeysToAttend: keys,
	}
}

// normalizeTopics sorts and removes duplicates, the order topics are read back from the store
func normalizeTopics(topics []string) model.TopicList {
	result := append(model.TopicList(nil), topics...)
	sort.Strings(result)

	n := 0
	for i, topic := range result {
		if i > 0 && topic == result[n-1] {
			continue
		}
		result[n] = topic
		n++
	}
	return result[:n]
}

func validateTopics(topics []string) error {
	for _, topic := range topics {
		if topic == "" || strings.Contains(topic, ",") {
			return fmt.Errorf("%w: invalid topic %q", ErrInvalidConference, topic)
		}
	}
	return nil
}

func parseDate(name string, value string) (model.NullDate, error) {
	date, err := model.ParseNullDate(value)
	if err != nil {
		return model.NullDate{}, fmt.Errorf("%w: %s %q is not YYYY-MM-DD", ErrInvalidConference, name, value)
	}
	return date, nil
}

func setStartDate(conf *model.Conference, value string) error {
	date, err := parseDate("startDate", value)
	if err != nil {
		return err
	}
	conf.StartDate = date
	conf.Month = 0
	if date.Valid {
		conf.Month = int64(date.Time.Month())
	}
	return nil
}

// newConference fills a conference from the input of its creator, missing fields get their defaults
func newConference(id string, userID string, input ConferenceInput) (model.Conference, error) {
	if input.Name == nil || *input.Name == "" {
		return model.Conference{}, fmt.Errorf("%w: name is required", ErrInvalidConference)
	}

	conf := model.Conference{
		ID:              id,
		OrganizerUserID: userID,
		Name:            *input.Name,
		City:            defaultCity,
		Topics:          normalizeTopics(defaultTopics),
	}

	if input.Description != nil {
		conf.Description = *input.Description
	}
	if input.City != nil && *input.City != "" {
		conf.City = *input.City
	}
	if len(input.Topics) > 0 {
		if err := validateTopics(input.Topics); err != nil {
			return model.Conference{}, err
		}
		conf.Topics = normalizeTopics(input.Topics)
	}

	if input.StartDate != nil {
		if err := setStartDate(&conf, *input.StartDate); err != nil {
			return model.Conference{}, err
		}
	}
	if input.EndDate != nil {
		date, err := parseDate("endDate", *input.EndDate)
		if err != nil {
			return model.Conference{}, err
		}
		conf.EndDate = date
	}

	if input.MaxAttendees != nil {
		if *input.MaxAttendees < 0 {
			return model.Conference{}, fmt.Errorf("%w: maxAttendees must not be negative", ErrInvalidConference)
		}
		conf.MaxAttendees = *input.MaxAttendees
	}
	conf.SeatsAvailable = conf.MaxAttendees

	return conf, nil
}

// applyConferenceInput copies only the supplied fields, the seat counter is handled by the caller
func applyConferenceInput(conf *model.Conference, input ConferenceInput) error {
	if input.Name != nil {
		if *input.Name == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidConference)
		}
		conf.Name = *input.Name
	}
	if input.Description != nil {
		conf.Description = *input.Description
	}
	if input.City != nil {
		conf.City = *input.City
	}
	if len(input.Topics) > 0 {
		if err := validateTopics(input.Topics); err != nil {
			return err
		}
		conf.Topics = normalizeTopics(input.Topics)
	}
	if input.StartDate != nil {
		if err := setStartDate(conf, *input.StartDate); err != nil {
			return err
		}
	}
	if input.EndDate != nil {
		date, err := parseDate("endDate", *input.EndDate)
		if err != nil {
			return err
		}
		conf.EndDate = date
	}
	if input.MaxAttendees != nil {
		if *input.MaxAttendees < 0 {
			return fmt.Errorf("%w: maxAttendees must not be negative", ErrInvalidConference)
		}
		conf.MaxAttendees = *input.MaxAttendees
	}
	return nil
}

func applyProfileInput(profile *model.Profile, input ProfileInput) error {
	if input.DisplayName != nil && *input.DisplayName != "" {
		profile.DisplayName = *input.DisplayName
	}
	if input.TeeShirtSize != nil && *input.TeeShirtSize != "" {
		size := model.TeeShirtSize(strings.ToUpper(*input.TeeShirtSize))
		if !size.Valid() {
			return fmt.Errorf("%w: unknown tee shirt size %q", ErrInvalidProfile, *input.TeeShirtSize)
		}
		profile.TeeShirtSize = size
	}
	return nil
}
