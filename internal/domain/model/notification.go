package model

import (
	"strconv"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
)

// Notification lives in the per-user sub-collection keyed by report id, so
// re-running a resolution for the same report overwrites instead of
// duplicating.
type Notification struct {
	Type      enums.NotificationType `json:"type"`
	Message   string                 `json:"message"`
	Response  string                 `json:"response"`
	CreatedAt int64                  `json:"created_at"`
	Read      bool                   `json:"read"`
}

func (n Notification) Record() map[string]string {
	return map[string]string{
		"type":      string(n.Type),
		"message":   n.Message,
		"response":  n.Response,
		"createdAt": strconv.FormatInt(n.CreatedAt, 10),
		"read":      strconv.FormatBool(n.Read),
	}
}
