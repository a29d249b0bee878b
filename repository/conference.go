package repository

import (
	"context"
	"iter"
	"sort"

	"github.com/QuangTung97/conference/model"
	"github.com/jmoiron/sqlx"
)

//go:generate moq -out conference_mock.go . Conference

// Conference ...
type Conference interface {
	GetConference(ctx context.Context, id string) (model.NullConference, error)
	GetConferences(ctx context.Context, ids []string) ([]model.Conference, error)
	QueryConferences(ctx context.Context, q ConferenceQuery) iter.Seq2[model.Conference, error]
	CountAttendees(ctx context.Context, conferenceID string) (int64, error)

	InsertConference(ctx context.Context, conf model.Conference) error
	UpdateConference(ctx context.Context, conf model.Conference) error
	UpdateSeats(ctx context.Context, conf model.Conference) error
}

type conferenceImpl struct {
}

// NewConference ...
func NewConference() Conference {
	return &conferenceImpl{}
}

const conferenceColumns = `
	c.id, c.organizer_user_id, c.name, c.description, c.city,
	c.start_date, c.end_date, c.month,
	c.max_attendees, c.seats_available, c.version,
	(SELECT GROUP_CONCAT(t.topic) FROM conference_topic t WHERE t.conference_id = c.id) AS topics
`

// GetConference ...
func (r *conferenceImpl) GetConference(ctx context.Context, id string) (model.NullConference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conference c WHERE c.id = ?`

	var result []model.Conference
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullConference{}, err
	}
	if len(result) == 0 {
		return model.NullConference{}, nil
	}
	return model.NullConference{
		Valid:      true,
		Conference: result[0],
	}, nil
}

// GetConferences returns the existing conferences among ids, ordered by name
func (r *conferenceImpl) GetConferences(ctx context.Context, ids []string) ([]model.Conference, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+conferenceColumns+` FROM conference c WHERE c.id IN (?) ORDER BY c.name, c.id`, ids)
	if err != nil {
		return nil, err
	}

	db := GetReadonly(ctx)
	var result []model.Conference
	err = db.SelectContext(ctx, &result, db.Rebind(query), args...)
	return result, err
}

// QueryConferences returns a lazy sequence, every range over it executes the query again
func (r *conferenceImpl) QueryConferences(
	ctx context.Context, q ConferenceQuery,
) iter.Seq2[model.Conference, error] {
	return func(yield func(model.Conference, error) bool) {
		where, args, err := q.render()
		if err != nil {
			yield(model.Conference{}, err)
			return
		}

		rows, err := GetReadonly(ctx).QueryxContext(ctx, `SELECT `+conferenceColumns+` FROM conference c`+where, args...)
		if err != nil {
			yield(model.Conference{}, err)
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var conf model.Conference
			if err := rows.StructScan(&conf); err != nil {
				yield(model.Conference{}, err)
				return
			}
			if !yield(conf, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Conference{}, err)
		}
	}
}

// CountAttendees ...
func (r *conferenceImpl) CountAttendees(ctx context.Context, conferenceID string) (int64, error) {
	query := `SELECT COUNT(*) FROM profile_conference WHERE conference_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, conferenceID)
	return count, err
}

func uniqueTopics(topics []string) []string {
	set := make(map[string]struct{}, len(topics))
	result := make([]string, 0, len(topics))
	for _, topic := range topics {
		if _, existed := set[topic]; existed {
			continue
		}
		set[topic] = struct{}{}
		result = append(result, topic)
	}
	sort.Strings(result)
	return result
}

func insertTopics(ctx context.Context, conferenceID string, topics []string) error {
	tx := GetTx(ctx)
	for _, topic := range uniqueTopics(topics) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO conference_topic (conference_id, topic) VALUES (?, ?)`, conferenceID, topic)
		if err != nil {
			return err
		}
	}
	return nil
}

// InsertConference ...
func (r *conferenceImpl) InsertConference(ctx context.Context, conf model.Conference) error {
	query := `
INSERT INTO conference (
	id, organizer_user_id, name, description, city,
	start_date, end_date, month,
	max_attendees, seats_available, version
) VALUES (
	:id, :organizer_user_id, :name, :description, :city,
	:start_date, :end_date, :month,
	:max_attendees, :seats_available, :version
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, conf)
	if err != nil {
		return err
	}
	return insertTopics(ctx, conf.ID, conf.Topics)
}

// UpdateConference writes every mutable field, conf.Version must be the version that was read
func (r *conferenceImpl) UpdateConference(ctx context.Context, conf model.Conference) error {
	query := `
UPDATE conference SET
	name = :name,
	description = :description,
	city = :city,
	start_date = :start_date,
	end_date = :end_date,
	month = :month,
	max_attendees = :max_attendees,
	seats_available = :seats_available,
	version = version + 1
WHERE id = :id AND version = :version
`
	tx := GetTx(ctx)
	result, err := tx.NamedExecContext(ctx, query, conf)
	if err != nil {
		return err
	}
	if err := checkVersioned(result, "conference", conf.ID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM conference_topic WHERE conference_id = ?`, conf.ID)
	if err != nil {
		return err
	}
	return insertTopics(ctx, conf.ID, conf.Topics)
}

// UpdateSeats writes the seat counter only, conf.Version must be the version that was read
func (r *conferenceImpl) UpdateSeats(ctx context.Context, conf model.Conference) error {
	query := `UPDATE conference SET seats_available = ?, version = version + 1 WHERE id = ? AND version = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, conf.SeatsAvailable, conf.ID, conf.Version)
	if err != nil {
		return err
	}
	return checkVersioned(result, "conference", conf.ID)
}
