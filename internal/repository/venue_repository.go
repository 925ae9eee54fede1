package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/gig-booking-dashboard/internal/database"
    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// VenueRepo manages venues and their types.
type VenueRepo struct{ DB *sql.DB }

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{DB: db} }

// CreateType adds a venue type.  Names are unique; a duplicate yields
// ErrConflict.
func (r *VenueRepo) CreateType(ctx context.Context, name string) (model.VenueType, error) {
    vt := model.VenueType{
        ID:        uuid.NewString(),
        Name:      strings.TrimSpace(name),
        CreatedAt: time.Now().UTC().Truncate(time.Second),
    }
    _, err := r.DB.ExecContext(ctx,
        `INSERT INTO venue_types (id, name, created_at) VALUES (?,?,?)`, vt.ID, vt.Name, vt.CreatedAt)
    if database.IsDuplicate(err) {
        return vt, ErrConflict
    }
    return vt, err
}

// ListTypes returns all venue types ordered by name.
func (r *VenueRepo) ListTypes(ctx context.Context) ([]model.VenueType, error) {
    rows, err := r.DB.QueryContext(ctx, `SELECT id, name, created_at FROM venue_types ORDER BY name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.VenueType{}
    for rows.Next() {
        var vt model.VenueType
        if err := rows.Scan(&vt.ID, &vt.Name, &vt.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, vt)
    }
    return out, rows.Err()
}

// Create inserts v.  An unknown venue type yields ErrNotFound.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
    v.ID = uuid.NewString()
    now := time.Now().UTC().Truncate(time.Second)
    v.CreatedAt, v.UpdatedAt = now, now
    _, err := r.DB.ExecContext(ctx,
        `INSERT INTO venues (id, name, venue_type_id, address, created_by, created_at, updated_at) VALUES (?,?,?,?,?,?,?)`,
        v.ID, v.Name, v.VenueTypeID, v.Address, v.CreatedBy, v.CreatedAt, v.UpdatedAt)
    if database.IsForeignKey(err) {
        return ErrNotFound
    }
    return err
}

const venueSelect = `SELECT v.id, v.name, v.venue_type_id, vt.name, v.address, v.created_by, v.created_at, v.updated_at
    FROM venues v LEFT JOIN venue_types vt ON vt.id = v.venue_type_id`

func scanVenue(s rowScanner, v *model.Venue) error {
    return s.Scan(&v.ID, &v.Name, &v.VenueTypeID, &v.VenueTypeName, &v.Address, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt)
}

// List returns all venues with their type names.
func (r *VenueRepo) List(ctx context.Context) ([]model.Venue, error) {
    rows, err := r.DB.QueryContext(ctx, venueSelect+` ORDER BY v.name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.Venue{}
    for rows.Next() {
        var v model.Venue
        if err := scanVenue(rows, &v); err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    return out, rows.Err()
}

// GetByID returns the venue or ErrNotFound.
func (r *VenueRepo) GetByID(ctx context.Context, id string) (*model.Venue, error) {
    var v model.Venue
    err := scanVenue(r.DB.QueryRowContext(ctx, venueSelect+` WHERE v.id = ?`, id), &v)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}
