// Package email provides transactional email delivery behind the EmailSender
// interface.
//
// Two implementations are available: NewPostmarkClient sends through the
// Postmark API and is intended for production, while NewDevSender writes each
// message to disk for local inspection. Callers depend only on EmailSender so
// the choice is made once at composition time.
package email
