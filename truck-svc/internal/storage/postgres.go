package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodtruck/truck-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) GetInfo(ctx context.Context) (*domain.BusinessInfo, error) {
	var info domain.BusinessInfo
	var instagram, facebook string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, phone, COALESCE(email, ''), COALESCE(instagram, ''),
		       COALESCE(facebook, ''), COALESCE(logo_url, ''), COALESCE(banner_url, ''), created_at
		FROM food_truck_info
		ORDER BY created_at
		LIMIT 1`).
		Scan(&info.ID, &info.Name, &info.Description, &info.Phone, &info.Email, &instagram,
			&facebook, &info.LogoURL, &info.BannerURL, &info.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	if instagram != "" || facebook != "" {
		info.SocialMedia = &domain.SocialMedia{Instagram: instagram, Facebook: facebook}
	}
	return &info, nil
}

func (r *PostgresRepository) InsertInfo(ctx context.Context, info *domain.BusinessInfo) error {
	instagram, facebook := socialHandles(info.SocialMedia)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO food_truck_info (id, name, description, phone, email, instagram, facebook, logo_url, banner_url, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10)`,
		info.ID, info.Name, info.Description, info.Phone, info.Email, instagram, facebook,
		info.LogoURL, info.BannerURL, info.CreatedAt)
	return err
}

func (r *PostgresRepository) ReplaceInfo(ctx context.Context, info *domain.BusinessInfo) error {
	instagram, facebook := socialHandles(info.SocialMedia)
	result, err := r.DB.ExecContext(ctx, `
		UPDATE food_truck_info
		SET name=$1, description=$2, phone=$3, email=NULLIF($4, ''), instagram=NULLIF($5, ''),
		    facebook=NULLIF($6, ''), logo_url=NULLIF($7, ''), banner_url=NULLIF($8, '')
		WHERE id=$9`,
		info.Name, info.Description, info.Phone, info.Email, instagram, facebook,
		info.LogoURL, info.BannerURL, info.ID)
	return affectedOne(result, err)
}

func socialHandles(sm *domain.SocialMedia) (string, string) {
	if sm == nil {
		return "", ""
	}
	return sm.Instagram, sm.Facebook
}

func affectedOne(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const menuColumns = `id, name, description, price, category, COALESCE(image_url, ''), available, created_at`

func scanMenuItem(row interface{ Scan(...any) error }, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.ImageURL, &item.Available, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	row := r.DB.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id)
	if err := scanMenuItem(row, &item); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *PostgresRepository) InsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, image_url, available, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.CreatedAt)
	return err
}

func (r *PostgresRepository) ReplaceMenuItem(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, image_url=NULLIF($5, ''), available=$6
		WHERE id=$7`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.ID)
	return affectedOne(result, err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const locationColumns = `id, name, address, latitude, longitude, COALESCE(schedule, ''), active, created_at`

func scanLocation(row interface{ Scan(...any) error }, loc *domain.Location) error {
	return row.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Latitude, &loc.Longitude,
		&loc.Schedule, &loc.Active, &loc.CreatedAt)
}

func (r *PostgresRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locs := []domain.Location{}
	for rows.Next() {
		var loc domain.Location
		if err := scanLocation(rows, &loc); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

func (r *PostgresRepository) GetLocation(ctx context.Context, id string) (*domain.Location, error) {
	var loc domain.Location
	row := r.DB.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	if err := scanLocation(row, &loc); err != nil {
		return nil, notFound(err)
	}
	return &loc, nil
}

func (r *PostgresRepository) InsertLocation(ctx context.Context, loc *domain.Location) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO locations (id, name, address, latitude, longitude, schedule, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`,
		loc.ID, loc.Name, loc.Address, loc.Latitude, loc.Longitude, loc.Schedule, loc.Active, loc.CreatedAt)
	return err
}

func (r *PostgresRepository) ReplaceLocation(ctx context.Context, loc *domain.Location) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE locations
		SET name=$1, address=$2, latitude=$3, longitude=$4, schedule=NULLIF($5, ''), active=$6
		WHERE id=$7`,
		loc.Name, loc.Address, loc.Latitude, loc.Longitude, loc.Schedule, loc.Active, loc.ID)
	return affectedOne(result, err)
}

func (r *PostgresRepository) DeleteLocation(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM locations WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS food_truck_info (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT,
			instagram TEXT,
			facebook TEXT,
			logo_url TEXT,
			banner_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			image_url TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			schedule TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
