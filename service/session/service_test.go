package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/integration"
	"github.com/QuangTung97/conference/pkg/memtable"
	"github.com/QuangTung97/conference/repository"
	"github.com/QuangTung97/conference/service/announcement"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() context.Context {
	return context.Background()
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(n int64) *int64 {
	return &n
}

var organizer = conference.User{ID: "user01", Email: "alice@example.com"}

type serviceTest struct {
	conference *conference.Service
	service    *Service
}

func newServiceTest(t *testing.T) *serviceTest {
	tc := integration.NewTestCase(t)
	provider := repository.NewProvider(tc.DB)
	confRepo := repository.NewConference()
	profileRepo := repository.NewProfile()

	manager := ledger.NewManager(provider, 3, ledger.NewMetrics(prometheus.NewRegistry()))
	featured := announcement.NewFeatured(memtable.New(1024 * 1024))

	s := NewService(provider, manager, confRepo, repository.NewSession(), featured)
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("sess%02d", seq)
	}

	return &serviceTest{
		conference: conference.NewService(provider, manager, query.NewService(provider, confRepo), confRepo, profileRepo),
		service:    s,
	}
}

func (st *serviceTest) createConference(t *testing.T) string {
	form, err := st.conference.CreateConference(newContext(), organizer.ID, conference.ConferenceInput{
		Name: strPtr("GopherCon"),
	})
	require.Equal(t, nil, err)
	return form.WebsafeKey
}

func (st *serviceTest) createSession(t *testing.T, conferenceID string, input SessionInput) SessionForm {
	form, err := st.service.CreateSession(newContext(), organizer, conferenceID, input)
	require.Equal(t, nil, err)
	return form
}

func sessionKeys(forms []SessionForm) []string {
	keys := make([]string, 0, len(forms))
	for _, f := range forms {
		keys = append(keys, f.WebsafeKey)
	}
	return keys
}

func TestService_CreateSession__Defaults(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	form, err := st.service.CreateSession(newContext(), organizer, confID, SessionInput{
		Name: strPtr("Intro to Go"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, SessionForm{
		WebsafeKey:    "sess01",
		ConferenceKey: confID,
		Name:          "Intro to Go",
		Speaker:       "alice",
		TypeOfSession: []string{"Lecture", "Workshop"},
	}, form)

	sessions, err := st.service.GetConferenceSessions(newContext(), confID, "")
	assert.Equal(t, nil, err)
	assert.Equal(t, []SessionForm{form}, sessions)
}

func TestService_CreateSession__All_Fields(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	form := st.createSession(t, confID, SessionInput{
		Name:          strPtr("Generics"),
		Highlights:    strPtr("type parameters"),
		Speaker:       strPtr("Bob"),
		Duration:      int64Ptr(45),
		TypeOfSession: []string{"Talk", "Keynote", "Talk"},
		Date:          strPtr("2026-11-05"),
		StartTime:     strPtr("09:30"),
	})
	assert.Equal(t, SessionForm{
		WebsafeKey:    "sess01",
		ConferenceKey: confID,
		Name:          "Generics",
		Highlights:    "type parameters",
		Speaker:       "Bob",
		Duration:      45,
		TypeOfSession: []string{"Keynote", "Talk"},
		Date:          "2026-11-05",
		StartTime:     "09:30",
	}, form)

	sessions, err := st.service.GetSessionsBySpeaker(newContext(), "Bob")
	assert.Equal(t, nil, err)
	assert.Equal(t, []SessionForm{form}, sessions)
}

func TestService_CreateSession__Errors(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	_, err := st.service.CreateSession(newContext(), organizer, "unknown", SessionInput{Name: strPtr("Intro")})
	assert.ErrorIs(t, err, conference.ErrConferenceNotFound)

	other := conference.User{ID: "user02", Email: "bob@example.com"}
	_, err = st.service.CreateSession(newContext(), other, confID, SessionInput{Name: strPtr("Intro")})
	assert.ErrorIs(t, err, conference.ErrForbidden)

	_, err = st.service.CreateSession(newContext(), organizer, confID, SessionInput{})
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = st.service.CreateSession(newContext(), organizer, confID, SessionInput{
		Name: strPtr("Intro"), StartTime: strPtr("25:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidSession)

	sessions, err := st.service.GetConferenceSessions(newContext(), confID, "")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(sessions))
}

func TestService_CreateSession__Featured_Speaker(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	st.createSession(t, confID, SessionInput{Name: strPtr("First"), Speaker: strPtr("Carol")})
	assert.Equal(t, "", st.service.GetFeaturedSpeaker(newContext()))

	st.createSession(t, confID, SessionInput{Name: strPtr("Other"), Speaker: strPtr("Dave")})
	assert.Equal(t, "", st.service.GetFeaturedSpeaker(newContext()))

	st.createSession(t, confID, SessionInput{Name: strPtr("Second"), Speaker: strPtr("Carol")})
	assert.Equal(t, "Today's featured speaker is Carol", st.service.GetFeaturedSpeaker(newContext()))
}

func TestService_GetConferenceSessions__By_Type(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	st.createSession(t, confID, SessionInput{Name: strPtr("B"), TypeOfSession: []string{"Workshop"}})
	st.createSession(t, confID, SessionInput{Name: strPtr("A"), TypeOfSession: []string{"Lecture"}})
	st.createSession(t, confID, SessionInput{Name: strPtr("C"), TypeOfSession: []string{"Lecture", "Workshop"}})

	sessions, err := st.service.GetConferenceSessions(newContext(), confID, "Lecture")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"sess02", "sess03"}, sessionKeys(sessions))

	sessions, err = st.service.GetConferenceSessions(newContext(), confID, "Workshop")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"sess01", "sess03"}, sessionKeys(sessions))

	_, err = st.service.GetConferenceSessions(newContext(), "unknown", "")
	assert.ErrorIs(t, err, conference.ErrConferenceNotFound)
}

func TestService_GetSessionsBefore(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	st.createSession(t, confID, SessionInput{
		Name: strPtr("Late Lecture"), StartTime: strPtr("18:00"), TypeOfSession: []string{"Lecture"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Morning Workshop"), StartTime: strPtr("10:00"), TypeOfSession: []string{"workshop"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Morning Lecture"), StartTime: strPtr("09:00"), TypeOfSession: []string{"Lecture"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Night Lecture"), StartTime: strPtr("20:00"), TypeOfSession: []string{"Lecture"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Unscheduled"), TypeOfSession: []string{"Lecture"},
	})

	sessions, err := st.service.GetSessionsBefore(newContext(), confID, model.NewNullClock(19, 0), WorkshopType)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"sess03", "sess01"}, sessionKeys(sessions))

	sessions, err = st.service.GetSessionsBefore(newContext(), confID, model.NewNullClock(18, 0), "")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"sess03", "sess02", "sess01"}, sessionKeys(sessions))

	_, err = st.service.GetSessionsBefore(newContext(), confID, model.NullClock{}, "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Wishlist(t *testing.T) {
	st := newServiceTest(t)
	confID := st.createConference(t)

	st.createSession(t, confID, SessionInput{
		Name: strPtr("Generics"), Speaker: strPtr("Bob"), TypeOfSession: []string{"Lecture"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Channels"), Speaker: strPtr("Bob"), TypeOfSession: []string{"Workshop"},
	})
	st.createSession(t, confID, SessionInput{
		Name: strPtr("Fuzzing"), Speaker: strPtr("Carol"), TypeOfSession: []string{"Lecture"},
	})

	for _, id := range []string{"sess01", "sess02", "sess03"} {
		_, err := st.service.AddSessionToWishlist(newContext(), "user02", id)
		require.Equal(t, nil, err)
	}

	_, err := st.service.AddSessionToWishlist(newContext(), "user02", "sess01")
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)

	_, err = st.service.AddSessionToWishlist(newContext(), "user02", "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	form, err := st.service.AddSessionToWishlist(newContext(), "user03", "sess01")
	assert.Equal(t, nil, err)
	assert.Equal(t, WishlistForm{
		SessionKey:    "sess01",
		SessionName:   "Generics",
		TypeOfSession: []string{"Lecture"},
	}, form)

	wishlist, err := st.service.GetWishlist(newContext(), "user02", "", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, []WishlistForm{
		{SessionKey: "sess02", SessionName: "Channels", TypeOfSession: []string{"Workshop"}},
		{SessionKey: "sess03", SessionName: "Fuzzing", TypeOfSession: []string{"Lecture"}},
		{SessionKey: "sess01", SessionName: "Generics", TypeOfSession: []string{"Lecture"}},
	}, wishlist)

	wishlist, err = st.service.GetWishlist(newContext(), "user02", "Bob", "Lecture")
	assert.Equal(t, nil, err)
	assert.Equal(t, []WishlistForm{
		{SessionKey: "sess01", SessionName: "Generics", TypeOfSession: []string{"Lecture"}},
	}, wishlist)

	wishlist, err = st.service.GetWishlist(newContext(), "user04", "", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, []WishlistForm{}, wishlist)
}
