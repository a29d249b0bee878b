package model

// Profile ...
type Profile struct {
	ID           string       `db:"id"`
	DisplayName  string       `db:"display_name"`
	MainEmail    string       `db:"main_email"`
	TeeShirtSize TeeShirtSize `db:"tee_shirt_size"`

	ConferenceKeysToAttend []string `db:"-"`

	Version int64 `db:"version"`
}

// NullProfile ...
type NullProfile struct {
	Valid   bool
	Profile Profile
}

// Attends reports whether the conference id is in the attendance set
func (p Profile) Attends(conferenceID string) bool {
	for _, key := range p.ConferenceKeysToAttend {
		if key == conferenceID {
			return true
		}
	}
	return false
}

// AddConference adds the id to the attendance set, returns false if it was already present
func (p *Profile) AddConference(conferenceID string) bool {
	if p.Attends(conferenceID) {
		return false
	}
	p.ConferenceKeysToAttend = append(p.ConferenceKeysToAttend, conferenceID)
	return true
}

// RemoveConference removes the id from the attendance set, returns false if it was absent
func (p *Profile) RemoveConference(conferenceID string) bool {
	for i, key := range p.ConferenceKeysToAttend {
		if key == conferenceID {
			keys := make([]string, 0, len(p.ConferenceKeysToAttend)-1)
			keys = append(keys, p.ConferenceKeysToAttend[:i]...)
			keys = append(keys, p.ConferenceKeysToAttend[i+1:]...)
			p.ConferenceKeysToAttend = keys
			return true
		}
	}
	return false
}

// TeeShirtSize ...
type TeeShirtSize string

// TeeShirtSizeNotSpecified ...
const TeeShirtSizeNotSpecified TeeShirtSize = "NOT_SPECIFIED"

var teeShirtSizes = map[TeeShirtSize]struct{}{
	TeeShirtSizeNotSpecified: {},
	"XS_M": {}, "XS_W": {},
	"S_M": {}, "S_W": {},
	"M_M": {}, "M_W": {},
	"L_M": {}, "L_W": {},
	"XL_M": {}, "XL_W": {},
	"XXL_M": {}, "XXL_W": {},
	"XXXL_M": {}, "XXXL_W": {},
}

// Valid ...
func (s TeeShirtSize) Valid() bool {
	_, ok := teeShirtSizes[s]
	return ok
}

// NewProfile returns the profile created on first use for a user
func NewProfile(userID string) Profile {
	return Profile{
		ID:           userID,
		DisplayName:  userID,
		TeeShirtSize: TeeShirtSizeNotSpecified,
	}
}
