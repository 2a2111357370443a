package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Record appends one operator action. The audit trail is best effort: with
// no pool configured the console runs in degraded mode and the write is
// skipped.
func (r *AuditRepo) Record(ctx context.Context, action, subjectID, details string) error {
	if r.pool == nil {
		return nil
	}
	if strings.TrimSpace(action) == "" || strings.TrimSpace(subjectID) == "" {
		return fmt.Errorf("invalid audit payload")
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO admin_audit_log (
	action,
	subject_id,
	details,
	created_at
) VALUES ($1, $2, $3, NOW())
`, action, subjectID, details); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}

	return nil
}
