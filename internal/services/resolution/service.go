package resolution

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/model"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/pkg/validate"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

var ErrInvalidInput = fmt.Errorf("invalid resolution input")

// NotificationError marks a Step B failure: the status mutation already
// persisted and is not rolled back, only the notification write failed.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return "notification write failed: " + e.Err.Error()
}

func (e *NotificationError) Unwrap() error { return e.Err }

// Result is the discriminated outcome of the two-phase workflow, so a
// caller can tell full success, status-only success and total failure
// apart.
type Result struct {
	ReportID      string
	Status        enums.ReportStatus
	StatusApplied bool
	Notified      bool
}

// ErrorSink receives the latest operator-visible failure.
type ErrorSink interface {
	SetErr(err error)
}

// Auditor appends operator actions to the audit trail.
type Auditor interface {
	Record(ctx context.Context, action, subjectID, details string) error
}

// Service applies an operator response to a report and notifies the
// affected user. The two steps hit collections with independent permission
// boundaries, so the workflow accepts partial failure with explicit
// surfacing instead of pretending to be atomic.
type Service struct {
	client store.Client
	sink   ErrorSink
	audit  Auditor
	log    *zap.Logger
	now    func() time.Time
}

func NewService(client store.Client, sink ErrorSink, audit Auditor, log *zap.Logger) *Service {
	return &Service{
		client: client,
		sink:   sink,
		audit:  audit,
		log:    log,
		now:    time.Now,
	}
}

// Respond toggles the report status relative to the status the operator
// saw, stores the response text, then writes the user notification. Step B
// never starts before Step A completes; a Step A failure aborts the
// workflow, a Step B failure leaves Step A in place.
func (s *Service) Respond(ctx context.Context, reportID string, currentStatus enums.ReportStatus, responseText, targetUserID string) (Result, error) {
	if !validate.Required(reportID) || !validate.Required(targetUserID) {
		return Result{}, ErrInvalidInput
	}
	if !currentStatus.Valid() {
		return Result{}, ErrInvalidInput
	}

	newStatus := currentStatus.Toggled()
	nowMillis := s.now().UnixMilli()
	res := Result{ReportID: reportID, Status: newStatus}

	// resolvedAt is stamped on every toggle, both directions. Observed
	// contract of the original console; see DESIGN.md before changing.
	err := s.client.Mutate(ctx, "reports/"+reportID, map[string]string{
		"status":     string(newStatus),
		"response":   responseText,
		"resolvedAt": strconv.FormatInt(nowMillis, 10),
	})
	if err != nil {
		wrapped := fmt.Errorf("respond: status update for report %s: %w", reportID, err)
		s.surface(wrapped)
		return res, wrapped
	}
	res.StatusApplied = true

	notification := model.Notification{
		Type:      enums.NotificationTypeResponse,
		Message:   "Your report " + reportID + " has been reviewed.",
		Response:  responseText,
		CreatedAt: nowMillis,
		Read:      false,
	}
	path := "users/" + targetUserID + "/notifications/" + reportID
	if err := s.client.Write(ctx, path, notification.Record()); err != nil {
		nerr := &NotificationError{Err: err}
		s.surface(nerr)
		return res, nerr
	}
	res.Notified = true

	if s.audit != nil {
		if err := s.audit.Record(ctx, "respond", reportID, string(newStatus)); err != nil && s.log != nil {
			s.log.Warn("audit record failed", zap.String("report_id", reportID), zap.Error(err))
		}
	}
	return res, nil
}

func (s *Service) surface(err error) {
	if s.sink != nil {
		s.sink.SetErr(err)
	}
	if s.log != nil {
		s.log.Error("resolution workflow failed", zap.Error(err))
	}
}
