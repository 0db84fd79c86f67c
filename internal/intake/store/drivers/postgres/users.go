package postgres

import (
	"context"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

const userColumns = `id, email, phone, first_name, last_name, client_id, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *usersRepo) FindOrphanedByPhone(
	ctx context.Context,
	phone, firstName, lastName, email string,
) (domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE phone = $1 AND client_id IS NULL
		 ORDER BY (email IS NOT NULL AND email = $2) DESC NULLS LAST,
		          (first_name = $3 AND last_name = $4) DESC NULLS LAST,
		          created_at ASC, id ASC
		 LIMIT 1`,
		phone, email, firstName, lastName))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, phone, first_name, last_name, client_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, nullable(u.Email), nullable(u.Phone),
		nullable(u.FirstName), nullable(u.LastName), nullable(u.ClientID),
	)
	return mapConstraint(err)
}

func (r *usersRepo) AttachClient(ctx context.Context, userID, clientID string) error {
	return expectOne(r.db.Exec(ctx,
		`UPDATE users SET client_id = $1, updated_at = now() WHERE id = $2`,
		clientID, userID))
}

func scanUser(s rowScanner) (domain.User, error) {
	var u domain.User
	var email, phone, first, last, clientID *string
	err := s.Scan(&u.ID, &email, &phone, &first, &last, &clientID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = deref(email)
	u.Phone = deref(phone)
	u.FirstName = deref(first)
	u.LastName = deref(last)
	u.ClientID = deref(clientID)
	return u, nil
}
