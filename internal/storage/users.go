package storage

import (
	"database/sql"
	"errors"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	err := r.DB.QueryRow(
		"INSERT INTO users (username, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		user.Username, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, email, password, role, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, email, password, role, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers() ([]domain.User, error) {
	rows, err := r.DB.Query(
		"SELECT id, username, email, role, created_at FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) UpdateUser(id int, username, email, role string) error {
	result, err := r.DB.Exec(
		"UPDATE users SET username = $1, email = $2, role = $3 WHERE id = $4",
		username, email, role, id)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateProfile leaves the password untouched when passwordHash is empty.
func (r *PostgresRepository) UpdateProfile(id int, username, email, passwordHash string) error {
	var (
		result sql.Result
		err    error
	)
	if passwordHash != "" {
		result, err = r.DB.Exec(
			"UPDATE users SET username = $1, email = $2, password = $3 WHERE id = $4",
			username, email, passwordHash, id)
	} else {
		result, err = r.DB.Exec(
			"UPDATE users SET username = $1, email = $2 WHERE id = $3",
			username, email, id)
	}
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteUser(id int) error {
	result, err := r.DB.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountUsers() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentUsers(limit int) ([]domain.User, error) {
	rows, err := r.DB.Query(
		"SELECT id, username, email, role, created_at FROM users ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
