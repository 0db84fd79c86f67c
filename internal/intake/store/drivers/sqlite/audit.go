package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

type auditRepo struct {
	db dbtx
}

func (r *auditRepo) AppendIntegrationResponse(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO integration_responses (id, firm_id, matter_id, payload)
		 VALUES (?, ?, ?, ?)`,
		e.ID, e.FirmID, mapStringNull(e.MatterID), string(e.Payload))
	return mapConstraint(err)
}

func (r *auditRepo) ListByFirm(ctx context.Context, firmID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, firm_id, matter_id, payload, created_at
		 FROM integration_responses
		 WHERE firm_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, firmID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var matter sql.NullString
		var payload string
		if err := rows.Scan(&e.ID, &e.FirmID, &matter, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.MatterID = mapNullString(matter)
		e.Payload = []byte(payload)
		out = append(out, e)
	}
	return out, rows.Err()
}
