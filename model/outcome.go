package model

// RegistrationOutcome ...
type RegistrationOutcome int

const (
	// RegistrationOutcomeRegistered ...
	RegistrationOutcomeRegistered RegistrationOutcome = 1

	// RegistrationOutcomeAlreadyRegistered ...
	RegistrationOutcomeAlreadyRegistered RegistrationOutcome = 2

	// RegistrationOutcomeUnregistered ...
	RegistrationOutcomeUnregistered RegistrationOutcome = 3

	// RegistrationOutcomeNotRegistered ...
	RegistrationOutcomeNotRegistered RegistrationOutcome = 4

	// RegistrationOutcomeNoSeatsAvailable ...
	RegistrationOutcomeNoSeatsAvailable RegistrationOutcome = 5

	// RegistrationOutcomeConferenceNotFound ...
	RegistrationOutcomeConferenceNotFound RegistrationOutcome = 6
)

func (o RegistrationOutcome) String() string {
	switch o {
	case RegistrationOutcomeRegistered:
		return "registered"
	case RegistrationOutcomeAlreadyRegistered:
		return "already_registered"
	case RegistrationOutcomeUnregistered:
		return "unregistered"
	case RegistrationOutcomeNotRegistered:
		return "not_registered"
	case RegistrationOutcomeNoSeatsAvailable:
		return "no_seats_available"
	case RegistrationOutcomeConferenceNotFound:
		return "conference_not_found"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome mutated the ledger
func (o RegistrationOutcome) Changed() bool {
	return o == RegistrationOutcomeRegistered || o == RegistrationOutcomeUnregistered
}
