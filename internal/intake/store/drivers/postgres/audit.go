package postgres

import (
	"context"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

type auditRepo struct {
	db dbtx
}

func (r *auditRepo) AppendIntegrationResponse(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO integration_responses (id, firm_id, matter_id, payload)
		 VALUES ($1, $2, $3, $4::jsonb)`,
		e.ID, e.FirmID, nullable(e.MatterID), string(e.Payload))
	return mapConstraint(err)
}

func (r *auditRepo) ListByFirm(ctx context.Context, firmID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, firm_id, matter_id, payload::text, created_at
		 FROM integration_responses
		 WHERE firm_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`, firmID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var matter *string
		var payload string
		if err := rows.Scan(&e.ID, &e.FirmID, &matter, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.MatterID = deref(matter)
		e.Payload = []byte(payload)
		out = append(out, e)
	}
	return out, rows.Err()
}
