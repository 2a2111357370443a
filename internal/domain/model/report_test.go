package model

import (
	"testing"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
)

func TestReportFromRecordKeyWinsOverPayloadID(t *testing.T) {
	fields := map[string]string{
		"id":          "payload-id",
		"createdAt":   "1700000000000",
		"description": "noise complaint",
		"name":        "Amina Uwase",
		"matterType":  "Community",
		"userId":      "u1",
		"status":      "pending",
	}

	r := ReportFromRecord("key-1", fields)

	if r.ID != "key-1" {
		t.Fatalf("identity must come from the collection key, got %s", r.ID)
	}
	if r.CreatedAt != 1700000000000 {
		t.Fatalf("unexpected createdAt: %d", r.CreatedAt)
	}
	if r.Status != enums.ReportStatusPending {
		t.Fatalf("unexpected status: %s", r.Status)
	}
	if r.ResolvedAt != nil {
		t.Fatalf("resolvedAt should be absent, got %d", *r.ResolvedAt)
	}
}

func TestReportFromRecordResolvedFields(t *testing.T) {
	r := ReportFromRecord("key-2", map[string]string{
		"status":     "resolved",
		"response":   "fixed",
		"resolvedAt": "1700000001234",
	})

	if r.Status != enums.ReportStatusResolved {
		t.Fatalf("unexpected status: %s", r.Status)
	}
	if r.Response != "fixed" {
		t.Fatalf("unexpected response: %s", r.Response)
	}
	if r.ResolvedAt == nil || *r.ResolvedAt != 1700000001234 {
		t.Fatalf("unexpected resolvedAt: %v", r.ResolvedAt)
	}
}

func TestReportFromRecordDefaultsInvalidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "empty", status: ""},
		{name: "garbage", status: "in-progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ReportFromRecord("k", map[string]string{"status": tt.status})
			if r.Status != enums.ReportStatusPending {
				t.Fatalf("invalid status should default to pending, got %s", r.Status)
			}
		})
	}
}

func TestReportRecordOmitsIdentity(t *testing.T) {
	resolvedAt := int64(1700000002000)
	r := Report{
		ID:         "key-3",
		CreatedAt:  1700000000000,
		Name:       "Eric Mugisha",
		MatterType: "Legal",
		UserID:     "u2",
		Status:     enums.ReportStatusResolved,
		Response:   "done",
		ResolvedAt: &resolvedAt,
	}

	fields := r.Record()
	if _, ok := fields["id"]; ok {
		t.Fatalf("identity must not be written as a payload field")
	}
	if fields["resolvedAt"] != "1700000002000" {
		t.Fatalf("unexpected resolvedAt field: %s", fields["resolvedAt"])
	}

	back := ReportFromRecord(r.ID, fields)
	if back.Name != r.Name || back.Status != r.Status || back.UserID != r.UserID {
		t.Fatalf("record round trip mismatch: %+v", back)
	}
}
