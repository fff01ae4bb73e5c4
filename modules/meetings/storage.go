package meetings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meetspace/meetspace/pkg/pg"
)

// Meeting is a scheduled event with limited attendee capacity.
type Meeting struct {
	ID        uuid.UUID
	Title     string
	StartsAt  time.Time
	EndsAt    time.Time
	Capacity  int
	CreatorID uuid.UUID
	CreatedAt time.Time
}

type meetingStore interface {
	CreateMeeting(ctx context.Context, m Meeting) error
	GetMeeting(ctx context.Context, id uuid.UUID) (Meeting, error)
	ListMeetings(ctx context.Context) ([]Meeting, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	AddAttendee(ctx context.Context, meetingID, userID uuid.UUID) error
	RemoveAttendee(ctx context.Context, meetingID, userID uuid.UUID) error
	CountAttendees(ctx context.Context, meetingID uuid.UUID) (int, error)
}

type storage struct {
	db *pgxpool.Pool
}

func newStorage(db *pgxpool.Pool) *storage {
	return &storage{db: db}
}

func (s *storage) CreateMeeting(ctx context.Context, m Meeting) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO meetings_meetings (id, title, starts_at, ends_at, capacity, creator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Title, m.StartsAt, m.EndsAt, m.Capacity, m.CreatorID, m.CreatedAt)
	return err
}

func (s *storage) GetMeeting(ctx context.Context, id uuid.UUID) (Meeting, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, title, starts_at, ends_at, capacity, creator_id, created_at
		 FROM meetings_meetings WHERE id = $1`, id)
	return scanMeeting(row)
}

func (s *storage) ListMeetings(ctx context.Context) ([]Meeting, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, starts_at, ends_at, capacity, creator_id, created_at
		 FROM meetings_meetings ORDER BY starts_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (s *storage) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM meetings_meetings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (s *storage) AddAttendee(ctx context.Context, meetingID, userID uuid.UUID) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO meetings_attendees (meeting_id, user_id, joined_at)
		 VALUES ($1, $2, now())`, meetingID, userID)
	return err
}

func (s *storage) RemoveAttendee(ctx context.Context, meetingID, userID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM meetings_attendees WHERE meeting_id = $1 AND user_id = $2`,
		meetingID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAttendeeNotFound
	}
	return nil
}

func (s *storage) CountAttendees(ctx context.Context, meetingID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM meetings_attendees WHERE meeting_id = $1`, meetingID).Scan(&count)
	return count, err
}

func scanMeeting(row pgx.Row) (Meeting, error) {
	var m Meeting
	err := row.Scan(&m.ID, &m.Title, &m.StartsAt, &m.EndsAt, &m.Capacity, &m.CreatorID, &m.CreatedAt)
	if pg.IsNotFoundError(err) {
		return Meeting{}, ErrMeetingNotFound
	}
	return m, err
}
