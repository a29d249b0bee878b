package repository

import (
	"context"
	"iter"

	"github.com/QuangTung97/conference/model"
)

//go:generate moq -out session_mock.go . Session

// Session ...
type Session interface {
	GetSession(ctx context.Context, id string) (model.NullSession, error)
	QuerySessions(ctx context.Context, q SessionQuery) iter.Seq2[model.Session, error]
	CountSpeakerSessions(ctx context.Context, speaker string) (int64, error)
	InsertSession(ctx context.Context, sess model.Session) error

	InWishlist(ctx context.Context, userID string, sessionID string) (bool, error)
	InsertWishlist(ctx context.Context, userID string, sessionID string) error
}

type sessionImpl struct {
}

// NewSession ...
func NewSession() Session {
	return &sessionImpl{}
}

const sessionColumns = `
	s.id, s.conference_id, s.name, s.highlights, s.speaker, s.duration_minutes,
	s.session_date, s.start_time,
	(SELECT GROUP_CONCAT(st.type_name) FROM session_type st WHERE st.session_id = s.id) AS types
`

// GetSession ...
func (r *sessionImpl) GetSession(ctx context.Context, id string) (model.NullSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM session s WHERE s.id = ?`

	var result []model.Session
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullSession{}, err
	}
	if len(result) == 0 {
		return model.NullSession{}, nil
	}
	return model.NullSession{
		Valid:   true,
		Session: result[0],
	}, nil
}

// QuerySessions returns a lazy sequence, every range over it executes the query again
func (r *sessionImpl) QuerySessions(ctx context.Context, q SessionQuery) iter.Seq2[model.Session, error] {
	return func(yield func(model.Session, error) bool) {
		where, args, err := q.render()
		if err != nil {
			yield(model.Session{}, err)
			return
		}

		rows, err := GetReadonly(ctx).QueryxContext(ctx, `SELECT `+sessionColumns+` FROM session s`+where, args...)
		if err != nil {
			yield(model.Session{}, err)
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var sess model.Session
			if err := rows.StructScan(&sess); err != nil {
				yield(model.Session{}, err)
				return
			}
			if !yield(sess, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Session{}, err)
		}
	}
}

// CountSpeakerSessions counts the sessions of the speaker across all conferences
func (r *sessionImpl) CountSpeakerSessions(ctx context.Context, speaker string) (int64, error) {
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, `SELECT COUNT(*) FROM session WHERE speaker = ?`, speaker)
	return count, err
}

// InsertSession ...
func (r *sessionImpl) InsertSession(ctx context.Context, sess model.Session) error {
	query := `
INSERT INTO session (
	id, conference_id, name, highlights, speaker, duration_minutes,
	session_date, start_time
) VALUES (
	:id, :conference_id, :name, :highlights, :speaker, :duration_minutes,
	:session_date, :start_time
)
`
	tx := GetTx(ctx)
	_, err := tx.NamedExecContext(ctx, query, sess)
	if err != nil {
		return err
	}

	for _, typeName := range uniqueTopics(sess.TypesOfSession) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session_type (session_id, type_name) VALUES (?, ?)`, sess.ID, typeName)
		if err != nil {
			return err
		}
	}
	return nil
}

// InWishlist ...
func (r *sessionImpl) InWishlist(ctx context.Context, userID string, sessionID string) (bool, error) {
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM wishlist WHERE user_id = ? AND session_id = ?`, userID, sessionID)
	return count > 0, err
}

// InsertWishlist adds the session to the user's wishlist, adding it twice is a conflict
func (r *sessionImpl) InsertWishlist(ctx context.Context, userID string, sessionID string) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`INSERT INTO wishlist (user_id, session_id) VALUES (?, ?)`, userID, sessionID)
	return err
}
