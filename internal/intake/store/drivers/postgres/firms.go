package postgres

import (
	"context"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const firmColumns = `id, name, is_corporate, sync_client_contact_info,
	update_client_missing_data, phone_rule, created_at, updated_at`

type firmsRepo struct {
	db dbtx
}

func (r *firmsRepo) GetFirmByID(ctx context.Context, id string) (domain.Firm, error) {
	return scanFirm(r.db.QueryRow(ctx, `SELECT `+firmColumns+` FROM firms WHERE id = $1`, id))
}

func (r *firmsRepo) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	rows, err := r.db.Query(ctx, `SELECT `+firmColumns+` FROM firms ORDER BY name, id`)
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
	_, err := r.db.Exec(ctx,
		`INSERT INTO firms (id, name, is_corporate, sync_client_contact_info,
		                    update_client_missing_data, phone_rule)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name,
		     is_corporate = EXCLUDED.is_corporate,
		     sync_client_contact_info = EXCLUDED.sync_client_contact_info,
		     update_client_missing_data = EXCLUDED.update_client_missing_data,
		     phone_rule = EXCLUDED.phone_rule,
		     updated_at = now()`,
		f.ID, f.Name, f.IsCorporate,
		f.Settings.SyncClientContactInfo, f.Settings.UpdateClientMissingData,
		nullable(f.PhoneRule),
	)
	return mapConstraint(err)
}

func scanFirm(s rowScanner) (domain.Firm, error) {
	var f domain.Firm
	var rule *string
	err := s.Scan(&f.ID, &f.Name, &f.IsCorporate,
		&f.Settings.SyncClientContactInfo, &f.Settings.UpdateClientMissingData,
		&rule, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Firm{}, mapNotFound(err)
	}
	f.PhoneRule = deref(rule)
	return f, nil
}
