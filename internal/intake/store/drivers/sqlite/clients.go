package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const clientColumns = `id, firm_id, first_name, last_name, birth_date, email,
	cell_phone, integration_id, ssn, created_at, updated_at`

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByIntegrationID(ctx context.Context, firmID, integrationID string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = ? AND integration_id = ?
		 LIMIT 1`, firmID, integrationID)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, firmID, email string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = ? AND email = ?
		 LIMIT 1`, firmID, email)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByPhone(ctx context.Context, firmID, phone string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = ? AND cell_phone = ?
		 LIMIT 1`, firmID, phone)
	return scanClient(row)
}

func (r *clientsRepo) ListClientsByFirm(ctx context.Context, firmID string, limit int) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, firmID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, firm_id, first_name, last_name, birth_date, email,
		                      cell_phone, integration_id, ssn)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.FirmID,
		mapStringNull(c.FirstName),
		mapStringNull(c.LastName),
		mapStringNull(c.BirthDate),
		mapStringNull(c.Email),
		mapStringNull(c.CellPhone),
		mapStringNull(c.IntegrationID),
		mapStringNull(c.SSN),
	)
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE clients
		 SET first_name = ?, last_name = ?, birth_date = ?, email = ?,
		     cell_phone = ?, integration_id = ?, ssn = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		mapStringNull(c.FirstName),
		mapStringNull(c.LastName),
		mapStringNull(c.BirthDate),
		mapStringNull(c.Email),
		mapStringNull(c.CellPhone),
		mapStringNull(c.IntegrationID),
		mapStringNull(c.SSN),
		c.ID,
	))
}

func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	var first, last, birth, email, phone, iid, ssn sql.NullString
	err := s.Scan(&c.ID, &c.FirmID, &first, &last, &birth, &email,
		&phone, &iid, &ssn, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.FirstName = mapNullString(first)
	c.LastName = mapNullString(last)
	c.BirthDate = mapNullString(birth)
	c.Email = mapNullString(email)
	c.CellPhone = mapNullString(phone)
	c.IntegrationID = mapNullString(iid)
	c.SSN = mapNullString(ssn)
	return c, nil
}
