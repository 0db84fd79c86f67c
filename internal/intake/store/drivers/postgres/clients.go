package postgres

import (
	"context"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const clientColumns = `id, firm_id, first_name, last_name, birth_date, email,
	cell_phone, integration_id, ssn, created_at, updated_at`

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
}

func (r *clientsRepo) GetClientByIntegrationID(ctx context.Context, firmID, integrationID string) (domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = $1 AND integration_id = $2
		 LIMIT 1`, firmID, integrationID))
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, firmID, email string) (domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = $1 AND email = $2
		 LIMIT 1`, firmID, email))
}

func (r *clientsRepo) GetClientByPhone(ctx context.Context, firmID, phone string) (domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = $1 AND cell_phone = $2
		 LIMIT 1`, firmID, phone))
}

func (r *clientsRepo) ListClientsByFirm(ctx context.Context, firmID string, limit int) ([]domain.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+` FROM clients
		 WHERE firm_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`, firmID, limit)
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
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (id, firm_id, first_name, last_name, birth_date, email,
		                      cell_phone, integration_id, ssn)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.FirmID,
		nullable(c.FirstName), nullable(c.LastName), nullable(c.BirthDate),
		nullable(c.Email), nullable(c.CellPhone), nullable(c.IntegrationID),
		nullable(c.SSN),
	)
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	return expectOne(r.db.Exec(ctx,
		`UPDATE clients
		 SET first_name = $1, last_name = $2, birth_date = $3, email = $4,
		     cell_phone = $5, integration_id = $6, ssn = $7, updated_at = now()
		 WHERE id = $8`,
		nullable(c.FirstName), nullable(c.LastName), nullable(c.BirthDate),
		nullable(c.Email), nullable(c.CellPhone), nullable(c.IntegrationID),
		nullable(c.SSN), c.ID,
	))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(s rowScanner) (domain.Client, error) {
	var c domain.Client
	var first, last, birth, email, phone, iid, ssn *string
	err := s.Scan(&c.ID, &c.FirmID, &first, &last, &birth, &email,
		&phone, &iid, &ssn, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.FirstName = deref(first)
	c.LastName = deref(last)
	c.BirthDate = deref(birth)
	c.Email = deref(email)
	c.CellPhone = deref(phone)
	c.IntegrationID = deref(iid)
	c.SSN = deref(ssn)
	return c, nil
}
