package storage

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

const menuColumns = "id, name, category, COALESCE(description, ''), price, COALESCE(image_filename, ''), created_at, updated_at"

func scanMenuItem(row interface{ Scan(...any) error }, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.Name, &item.Category, &item.Description,
		&item.Price, &item.ImageFilename, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) ListMenuItems(category, search string) ([]domain.MenuItem, error) {
	query := "SELECT " + menuColumns + " FROM menu_items WHERE 1=1"
	args := []any{}

	if category != "" && category != "all" {
		args = append(args, category)
		query += " AND category = $1"
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (name ILIKE $" + n + " OR description ILIKE $" + n + ")"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := scanMenuItem(r.DB.QueryRow(
		"SELECT "+menuColumns+" FROM menu_items WHERE id = $1", id), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListCategories() ([]string, error) {
	rows, err := r.DB.Query("SELECT DISTINCT category FROM menu_items ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_items (name, category, description, price, image_filename) VALUES ($1, $2, $3, $4, NULLIF($5, '')) RETURNING id, created_at, updated_at",
		item.Name, item.Category, item.Description, item.Price, item.ImageFilename,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	result, err := r.DB.Exec(
		"UPDATE menu_items SET name=$1, category=$2, description=$3, price=$4, image_filename=NULLIF($5, ''), updated_at=NOW() WHERE id=$6",
		item.Name, item.Category, item.Description, item.Price, item.ImageFilename, item.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountMenuItems() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentMenuItems(limit int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(
		"SELECT "+menuColumns+" FROM menu_items ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
