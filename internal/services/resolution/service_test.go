package resolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

type mutateCall struct {
	path   string
	fields map[string]string
}

type clientStub struct {
	mutateErr error
	writeErr  error
	mutations []mutateCall
	writes    []mutateCall
}

func (c *clientStub) Subscribe(context.Context, string, *store.Filter) (store.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (c *clientStub) Query(context.Context, string, *store.Filter) (store.Snapshot, error) {
	return store.Snapshot{}, errors.New("not implemented")
}

func (c *clientStub) Mutate(_ context.Context, path string, fields map[string]string) error {
	if c.mutateErr != nil {
		return c.mutateErr
	}
	c.mutations = append(c.mutations, mutateCall{path: path, fields: fields})
	return nil
}

func (c *clientStub) Write(_ context.Context, path string, fields map[string]string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, mutateCall{path: path, fields: fields})
	return nil
}

func (c *clientStub) Push(context.Context, string, map[string]string) (string, error) {
	return "", errors.New("not implemented")
}

func (c *clientStub) Close() error { return nil }

type sinkStub struct {
	last error
}

func (s *sinkStub) SetErr(err error) { s.last = err }

func newTestService(client *clientStub, sink *sinkStub) *Service {
	svc := NewService(client, sink, nil, nil)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestRespondTogglesStatus(t *testing.T) {
	tests := []struct {
		current enums.ReportStatus
		want    enums.ReportStatus
	}{
		{current: enums.ReportStatusPending, want: enums.ReportStatusResolved},
		{current: enums.ReportStatusResolved, want: enums.ReportStatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			client := &clientStub{}
			result, err := newTestService(client, &sinkStub{}).Respond(
				context.Background(), "r1", tt.current, "looked into it", "u1")
			if err != nil {
				t.Fatalf("respond: %v", err)
			}
			if result.Status != tt.want {
				t.Fatalf("toggle from %s: got %s want %s", tt.current, result.Status, tt.want)
			}
			if !result.StatusApplied || !result.Notified {
				t.Fatalf("expected full success, got %+v", result)
			}

			fields := client.mutations[0].fields
			if fields["status"] != string(tt.want) {
				t.Fatalf("unexpected status field: %s", fields["status"])
			}
			// resolvedAt is stamped on both toggle directions.
			if fields["resolvedAt"] != "1700000000000" {
				t.Fatalf("resolvedAt must be stamped, got %q", fields["resolvedAt"])
			}
		})
	}
}

func TestRespondWritesNotificationKeyedByReport(t *testing.T) {
	client := &clientStub{}
	if _, err := newTestService(client, &sinkStub{}).Respond(
		context.Background(), "r9", enums.ReportStatusPending, "resolved it", "u7"); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if len(client.writes) != 1 {
		t.Fatalf("expected exactly one notification write, got %d", len(client.writes))
	}
	write := client.writes[0]
	if write.path != "users/u7/notifications/r9" {
		t.Fatalf("unexpected notification path: %s", write.path)
	}
	if write.fields["read"] != "false" {
		t.Fatalf("notification must start unread")
	}
	if write.fields["response"] != "resolved it" {
		t.Fatalf("unexpected response field: %s", write.fields["response"])
	}
}

func TestRespondStepAFailureAbortsNotification(t *testing.T) {
	client := &clientStub{mutateErr: store.ErrPermission}
	sink := &sinkStub{}

	result, err := newTestService(client, sink).Respond(
		context.Background(), "r1", enums.ReportStatusPending, "", "u1")
	if !errors.Is(err, store.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if result.StatusApplied || result.Notified {
		t.Fatalf("nothing should be applied, got %+v", result)
	}
	if len(client.writes) != 0 {
		t.Fatalf("no notification may be written after a failed status update")
	}
	if sink.last == nil {
		t.Fatalf("failure must surface on the error sink")
	}
}

func TestRespondStepBFailureKeepsStatus(t *testing.T) {
	client := &clientStub{writeErr: store.ErrPermission}
	sink := &sinkStub{}

	result, err := newTestService(client, sink).Respond(
		context.Background(), "r1", enums.ReportStatusPending, "text", "u1")

	var notifErr *NotificationError
	if !errors.As(err, &notifErr) {
		t.Fatalf("expected NotificationError, got %v", err)
	}
	if !result.StatusApplied {
		t.Fatalf("status mutation is not rolled back on notification failure")
	}
	if result.Notified {
		t.Fatalf("notified must be false")
	}
	if len(client.mutations) != 1 {
		t.Fatalf("status mutation should have happened once")
	}
	if sink.last == nil {
		t.Fatalf("failure must surface on the error sink")
	}
}

func TestRespondValidatesInput(t *testing.T) {
	tests := []struct {
		name     string
		reportID string
		status   enums.ReportStatus
		userID   string
	}{
		{name: "empty report id", reportID: " ", status: enums.ReportStatusPending, userID: "u1"},
		{name: "empty user id", reportID: "r1", status: enums.ReportStatusPending, userID: ""},
		{name: "bad status", reportID: "r1", status: "archived", userID: "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &clientStub{}
			_, err := newTestService(client, &sinkStub{}).Respond(
				context.Background(), tt.reportID, tt.status, "", tt.userID)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(client.mutations) != 0 {
				t.Fatalf("invalid input must not reach the store")
			}
		})
	}
}

func TestRespondEmptyResponseTextAllowed(t *testing.T) {
	client := &clientStub{}
	if _, err := newTestService(client, &sinkStub{}).Respond(
		context.Background(), "r1", enums.ReportStatusPending, "", "u1"); err != nil {
		t.Fatalf("respond with empty text: %v", err)
	}
	if client.mutations[0].fields["response"] != "" {
		t.Fatalf("empty response text should be stored as empty string")
	}
}
