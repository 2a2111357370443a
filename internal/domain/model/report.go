package model

import (
	"strconv"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
)

type Report struct {
	ID          string             `json:"id"`
	CreatedAt   int64              `json:"created_at"`
	Description string             `json:"description"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Name        string             `json:"name"`
	MatterType  string             `json:"matter_type"`
	UserID      string             `json:"user_id"`
	Status      enums.ReportStatus `json:"status"`
	Response    string             `json:"response,omitempty"`
	ResolvedAt  *int64             `json:"resolved_at,omitempty"`
}

// ReportFromRecord materializes a report from a collection record. The
// collection key is always the identity; a payload field named "id" is
// ignored.
func ReportFromRecord(key string, fields map[string]string) Report {
	r := Report{
		ID:          key,
		CreatedAt:   parseMillis(fields["createdAt"]),
		Description: fields["description"],
		Email:       fields["email"],
		Phone:       fields["phone"],
		Name:        fields["name"],
		MatterType:  fields["matterType"],
		UserID:      fields["userId"],
		Status:      enums.ReportStatus(fields["status"]),
	}
	if !r.Status.Valid() {
		r.Status = enums.ReportStatusPending
	}
	if raw, ok := fields["resolvedAt"]; ok && raw != "" {
		ts := parseMillis(raw)
		r.ResolvedAt = &ts
	}
	if raw, ok := fields["response"]; ok {
		r.Response = raw
	}
	return r
}

// Record flattens the report into collection fields. The identity stays in
// the collection key and is never written as a payload field.
func (r Report) Record() map[string]string {
	fields := map[string]string{
		"createdAt":   strconv.FormatInt(r.CreatedAt, 10),
		"description": r.Description,
		"email":       r.Email,
		"phone":       r.Phone,
		"name":        r.Name,
		"matterType":  r.MatterType,
		"userId":      r.UserID,
		"status":      string(r.Status),
	}
	if r.Response != "" {
		fields["response"] = r.Response
	}
	if r.ResolvedAt != nil {
		fields["resolvedAt"] = strconv.FormatInt(*r.ResolvedAt, 10)
	}
	return fields
}

func parseMillis(raw string) int64 {
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
