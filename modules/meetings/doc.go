// Package meetings is the scheduling bounded context: meetings with a time
// range and attendee capacity, plus join/leave attendance.
//
// Validation failures (empty title, inverted time range) surface as
// field-level errors; crossing the capacity limit is a business rule
// violation with code meeting_capacity_exceeded and carries no field errors.
package meetings
