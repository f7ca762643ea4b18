// Package store persists asset inventory records in SQLite. The engine
// packages never touch it; it is the durable side the CLI writes accepted
// classifications into.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"
	"github.com/vshtohryn/assetserve/internal/utils"
	"github.com/vshtohryn/assetserve/pkg/catalog"
)

const dbFile = "assets.db"

// Statuses an asset can be in.
var Statuses = []string{"In Use", "In Repair", "Spare", "For Parts", "For Recycle"}

// Asset is one inventory record. Optional text columns are plain strings
// ("" means unset); optional dates are nil when absent.
type Asset struct {
	ID           string
	MachineName  string
	Category     catalog.Category
	OS           string
	Location     string
	Manufacturer string
	PartNumber   string
	ModelNumber  string
	SerialNumber string
	Type         string
	AssignedUser string
	UserID       *int64
	UserType     string // "local" or "remote"
	Owner        string
	Status       string
	Notes        string
	PurchaseDate *time.Time
	WarrantyDate *time.Time
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store manages the asset SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the asset database under dataDir and ensures the
// schema exists.
func Open(dataDir string) (*Store, error) {
	if err := utils.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS assets (
			id TEXT PRIMARY KEY,
			machine_name TEXT NOT NULL,
			category TEXT NOT NULL,
			os TEXT,
			location TEXT,
			manufacturer TEXT NOT NULL,
			part_number TEXT,
			model_number TEXT,
			serial_number TEXT,
			type TEXT,
			assigned_user TEXT,
			user_id INTEGER,
			user_type TEXT,
			owner TEXT,
			status TEXT NOT NULL,
			notes TEXT,
			purchase_date TEXT,
			warranty_date TEXT,
			created_by TEXT,
			updated_by TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_machine_name ON assets(machine_name)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_category ON assets(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Create inserts a new asset. A missing ID gets a fresh UUID; audit
// timestamps are set here.
func (s *Store) Create(ctx context.Context, a *Asset) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if !a.Category.Valid() {
		return fmt.Errorf("invalid category %q", a.Category)
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO assets (
		id, machine_name, category, os, location, manufacturer,
		part_number, model_number, serial_number, type,
		assigned_user, user_id, user_type, owner, status, notes,
		purchase_date, warranty_date, created_by, updated_by, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.MachineName, string(a.Category), a.OS, a.Location, a.Manufacturer,
		a.PartNumber, a.ModelNumber, a.SerialNumber, a.Type,
		a.AssignedUser, a.UserID, a.UserType, a.Owner, a.Status, a.Notes,
		timeString(a.PurchaseDate), timeString(a.WarrantyDate),
		a.CreatedBy, a.UpdatedBy, now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting asset %s: %w", a.MachineName, err)
	}
	return nil
}

// Get returns the asset with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Asset, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	return scanAsset(row)
}

// Update rewrites all mutable columns of an asset and bumps updated_at.
func (s *Store) Update(ctx context.Context, a *Asset) error {
	now := time.Now().UTC()
	a.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `UPDATE assets SET
		machine_name = ?, category = ?, os = ?, location = ?, manufacturer = ?,
		part_number = ?, model_number = ?, serial_number = ?, type = ?,
		assigned_user = ?, user_id = ?, user_type = ?, owner = ?, status = ?, notes = ?,
		purchase_date = ?, warranty_date = ?, updated_by = ?, updated_at = ?
		WHERE id = ?`,
		a.MachineName, string(a.Category), a.OS, a.Location, a.Manufacturer,
		a.PartNumber, a.ModelNumber, a.SerialNumber, a.Type,
		a.AssignedUser, a.UserID, a.UserType, a.Owner, a.Status, a.Notes,
		timeString(a.PurchaseDate), timeString(a.WarrantyDate),
		a.UpdatedBy, now.Format(time.RFC3339), a.ID)
	if err != nil {
		return fmt.Errorf("updating asset %s: %w", a.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("asset %s not found", a.ID)
	}
	return nil
}

// Delete removes an asset by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting asset %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("asset %s not found", id)
	}
	return nil
}

// List returns all assets, optionally filtered by category, sorted by
// machine name.
func (s *Store) List(ctx context.Context, cat catalog.Category) ([]*Asset, error) {
	query := selectColumns
	args := []any{}
	if cat != "" {
		query += ` WHERE category = ?`
		args = append(args, string(cat))
	}
	query += ` ORDER BY machine_name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

const selectColumns = `SELECT
	id, machine_name, category, os, location, manufacturer,
	part_number, model_number, serial_number, type,
	assigned_user, user_id, user_type, owner, status, notes,
	purchase_date, warranty_date, created_by, updated_by, created_at, updated_at
	FROM assets`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*Asset, error) {
	var a Asset
	var cat string
	var os, location, partNumber, modelNumber, serialNumber, typ sql.NullString
	var assignedUser, userType, owner, notes, createdBy, updatedBy sql.NullString
	var userID sql.NullInt64
	var purchase, warranty sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID, &a.MachineName, &cat, &os, &location, &a.Manufacturer,
		&partNumber, &modelNumber, &serialNumber, &typ,
		&assignedUser, &userID, &userType, &owner, &a.Status, &notes,
		&purchase, &warranty, &createdBy, &updatedBy, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("asset not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning asset row: %w", err)
	}

	a.Category = catalog.Category(cat)
	a.OS = os.String
	a.Location = location.String
	a.PartNumber = partNumber.String
	a.ModelNumber = modelNumber.String
	a.SerialNumber = serialNumber.String
	a.Type = typ.String
	a.AssignedUser = assignedUser.String
	a.UserType = userType.String
	a.Owner = owner.String
	a.Notes = notes.String
	a.CreatedBy = createdBy.String
	a.UpdatedBy = updatedBy.String
	if userID.Valid {
		a.UserID = &userID.Int64
	}
	a.PurchaseDate = parseTime(purchase)
	a.WarrantyDate = parseTime(warranty)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		a.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		a.UpdatedAt = t
	}
	return &a, nil
}

func timeString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
