package moderation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/pkg/validate"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

var ErrInvalidInput = fmt.Errorf("invalid moderation input")

// ErrorSink receives the latest operator-visible failure.
type ErrorSink interface {
	SetErr(err error)
}

// Auditor appends operator actions to the audit trail.
type Auditor interface {
	Record(ctx context.Context, action, subjectID, details string) error
}

// Service carries the single-step moderation actions. Blocking never
// touches the projection directly; the change flows back through the live
// user subscription.
type Service struct {
	client store.Client
	sink   ErrorSink
	audit  Auditor
	log    *zap.Logger
}

func NewService(client store.Client, sink ErrorSink, audit Auditor, log *zap.Logger) *Service {
	return &Service{client: client, sink: sink, audit: audit, log: log}
}

// BlockUser sets blocked on the user record. Re-applying to an already
// blocked user is a no-op, not an error.
func (s *Service) BlockUser(ctx context.Context, userID string) error {
	if !validate.Required(userID) {
		return ErrInvalidInput
	}

	err := s.client.Mutate(ctx, "users/"+userID, map[string]string{"blocked": "true"})
	if err != nil {
		wrapped := fmt.Errorf("block user %s: %w", userID, err)
		if s.sink != nil {
			s.sink.SetErr(wrapped)
		}
		if s.log != nil {
			s.log.Error("block user failed", zap.String("user_id", userID), zap.Error(err))
		}
		return wrapped
	}

	if s.audit != nil {
		if err := s.audit.Record(ctx, "block_user", userID, ""); err != nil && s.log != nil {
			s.log.Warn("audit record failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return nil
}
