package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const userColumns = `id, email, phone, first_name, last_name, client_id, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) FindOrphanedByPhone(
	ctx context.Context,
	phone, firstName, lastName, email string,
) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE phone = ? AND client_id IS NULL
		 ORDER BY (email IS NOT NULL AND email = ?) DESC,
		          (first_name = ? AND last_name = ?) DESC,
		          created_at ASC, id ASC
		 LIMIT 1`,
		phone, email, firstName, lastName)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, phone, first_name, last_name, client_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID,
		mapStringNull(u.Email),
		mapStringNull(u.Phone),
		mapStringNull(u.FirstName),
		mapStringNull(u.LastName),
		mapStringNull(u.ClientID),
	)
	return mapConstraint(err)
}

func (r *usersRepo) AttachClient(ctx context.Context, userID, clientID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET client_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		clientID, userID))
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	var email, phone, first, last, clientID sql.NullString
	err := s.Scan(&u.ID, &email, &phone, &first, &last, &clientID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = mapNullString(email)
	u.Phone = mapNullString(phone)
	u.FirstName = mapNullString(first)
	u.LastName = mapNullString(last)
	u.ClientID = mapNullString(clientID)
	return u, nil
}
