package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-agenda/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Name, u.Email, u.Password, string(u.Role)).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, users.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UsersRepo) GetByCredentials(ctx context.Context, email, password string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role
		FROM users
		WHERE email = $1 AND password = $2
	`, email, password)
	return scanUser(row)
}

func (r *UsersRepo) ListByRole(ctx context.Context, role users.Role) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, password, role
		FROM users
		WHERE role = $1
		ORDER BY id ASC
	`, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		var roleCol string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &roleCol); err != nil {
			return nil, err
		}
		u.Role = users.Role(roleCol)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, id int64, name, email string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
	`, id, name, email)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}
