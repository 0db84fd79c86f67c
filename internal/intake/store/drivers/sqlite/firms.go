package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const firmColumns = `id, name, is_corporate, sync_client_contact_info,
	update_client_missing_data, phone_rule, created_at, updated_at`

type firmsRepo struct {
	db dbtx
}

func (r *firmsRepo) GetFirmByID(ctx context.Context, id string) (domain.Firm, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+firmColumns+` FROM firms WHERE id = ?`, id)
	return scanFirm(row)
}

func (r *firmsRepo) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+firmColumns+` FROM firms ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Firm
	for rows.Next() {
		f, err := scanFirm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *firmsRepo) UpsertFirm(ctx context.Context, f domain.Firm) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO firms (id, name, is_corporate, sync_client_contact_info,
		                    update_client_missing_data, phone_rule)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     name = excluded.name,
		     is_corporate = excluded.is_corporate,
		     sync_client_contact_info = excluded.sync_client_contact_info,
		     update_client_missing_data = excluded.update_client_missing_data,
		     phone_rule = excluded.phone_rule,
		     updated_at = CURRENT_TIMESTAMP`,
		f.ID,
		f.Name,
		f.IsCorporate,
		f.Settings.SyncClientContactInfo,
		f.Settings.UpdateClientMissingData,
		mapStringNull(f.PhoneRule),
	)
	return mapConstraint(err)
}

func scanFirm(s scanner) (domain.Firm, error) {
	var f domain.Firm
	var rule sql.NullString
	err := s.Scan(&f.ID, &f.Name, &f.IsCorporate,
		&f.Settings.SyncClientContactInfo, &f.Settings.UpdateClientMissingData,
		&rule, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Firm{}, mapNotFound(err)
	}
	f.PhoneRule = mapNullString(rule)
	return f, nil
}
