package meetings

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/pg"
	"github.com/meetspace/meetspace/pkg/problem"
)

// Service implements meeting scheduling and attendance.
type Service struct {
	store   meetingStore
	execctx *execctx.Accessor
	log     *slog.Logger
}

// CreateParams carries a meeting creation request.
type CreateParams struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Capacity int       `json:"capacity"`
}

// Create validates and schedules a new meeting owned by the caller.
func (s *Service) Create(ctx context.Context, params CreateParams) (Meeting, error) {
	creatorID, ok := s.currentUser(ctx)
	if !ok {
		return Meeting{}, problem.Unauthorized()
	}

	verr := problem.NewValidationErrors()
	if params.Title == "" {
		verr.Add("title", "Title cannot be empty.")
	}
	if params.StartsAt.IsZero() {
		verr.Add("starts_at", "Start time is required.")
	}
	if !params.StartsAt.IsZero() && !params.EndsAt.IsZero() && !params.EndsAt.After(params.StartsAt) {
		verr.Add("ends_at", "End time must be after the start time.")
	}
	if params.Capacity < 1 {
		verr.Add("capacity", "Capacity must be at least 1.")
	}
	if !verr.IsEmpty() {
		return Meeting{}, verr
	}

	meeting := Meeting{
		ID:        uuid.New(),
		Title:     params.Title,
		StartsAt:  params.StartsAt,
		EndsAt:    params.EndsAt,
		Capacity:  params.Capacity,
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMeeting(ctx, meeting); err != nil {
		return Meeting{}, err
	}

	s.log.InfoContext(ctx, "meeting created",
		slog.String("meeting_id", meeting.ID.String()),
		logger.UserID(creatorID.String()))
	return meeting, nil
}

// Get loads one meeting.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Meeting, error) {
	return s.store.GetMeeting(ctx, id)
}

// List returns all meetings ordered by start time.
func (s *Service) List(ctx context.Context) ([]Meeting, error) {
	return s.store.ListMeetings(ctx)
}

// Join adds the caller as an attendee. Joining a full meeting violates the
// capacity rule; field-level validation is not involved.
func (s *Service) Join(ctx context.Context, meetingID uuid.UUID) error {
	userID, ok := s.currentUser(ctx)
	if !ok {
		return problem.Unauthorized()
	}

	meeting, err := s.store.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	count, err := s.store.CountAttendees(ctx, meetingID)
	if err != nil {
		return err
	}
	if count >= meeting.Capacity {
		return problem.NewRuleError(RuleCapacityExceeded, "The meeting has reached its attendee capacity.")
	}

	if err := s.store.AddAttendee(ctx, meetingID, userID); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return problem.NewRuleError(RuleAlreadyJoined, "You already joined this meeting.")
		}
		return err
	}

	s.log.InfoContext(ctx, "attendee joined",
		slog.String("meeting_id", meetingID.String()),
		logger.UserID(userID.String()))
	return nil
}

// Leave removes the caller from the attendee list.
func (s *Service) Leave(ctx context.Context, meetingID uuid.UUID) error {
	userID, ok := s.currentUser(ctx)
	if !ok {
		return problem.Unauthorized()
	}
	return s.store.RemoveAttendee(ctx, meetingID, userID)
}

// Delete removes a meeting. Only the creator may delete it.
func (s *Service) Delete(ctx context.Context, meetingID uuid.UUID) error {
	userID, ok := s.currentUser(ctx)
	if !ok {
		return problem.Unauthorized()
	}

	meeting, err := s.store.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting.CreatorID != userID {
		return problem.NewRuleError(RuleNotCreator, "Only the meeting creator can delete it.")
	}

	return s.store.DeleteMeeting(ctx, meetingID)
}

func (s *Service) currentUser(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := s.execctx.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
