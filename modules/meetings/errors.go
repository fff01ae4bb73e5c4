package meetings

import "errors"

var (
	ErrMeetingNotFound  = errors.New("meetings: meeting not found")
	ErrAttendeeNotFound = errors.New("meetings: attendee not found")
	ErrMissingPool      = errors.New("meetings: database pool is required")
)

// Business rule codes surfaced in 422 responses.
const (
	RuleCapacityExceeded = "meeting_capacity_exceeded"
	RuleAlreadyJoined    = "attendee_already_joined"
	RuleNotCreator       = "not_meeting_creator"
)
