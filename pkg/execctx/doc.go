// Package execctx exposes the ambient per-request execution context to
// module business logic.
//
// The Accessor answers one question - "which user is behind this call?" -
// by reading the principal the authentication middleware stored in the
// request context. Business code receives the accessor through the shared
// infrastructure bundle at composition time:
//
//	func (s *Service) CreateMeeting(ctx context.Context, cmd CreateMeeting) error {
//		creator, ok := s.execCtx.CurrentUserID(ctx)
//		if !ok {
//			// system or anonymous context
//		}
//		...
//	}
//
// Explicit context passing replaces thread-local ambient state: identity
// travels with the request's context.Context, which removes any risk of
// one request observing another's user under concurrent load.
package execctx
