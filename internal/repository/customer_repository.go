package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// CustomerRepo provides CRUD operations on the customers table.
type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

const customerColumns = `id, full_name, business_name, email, phone, billing_address, created_by, created_at, updated_at`

// Create inserts c and fills in its ID and timestamps.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
    c.ID = uuid.NewString()
    now := time.Now().UTC().Truncate(time.Second)
    c.CreatedAt, c.UpdatedAt = now, now
    var billing any
    if c.BillingAddress != nil {
        billing = *c.BillingAddress
    }
    _, err := r.DB.ExecContext(ctx,
        `INSERT INTO customers (`+customerColumns+`) VALUES (?,?,?,?,?,?,?,?,?)`,
        c.ID, c.FullName, c.BusinessName, c.Email, c.Phone, billing, c.CreatedBy, c.CreatedAt, c.UpdatedAt)
    return err
}

func scanCustomer(s rowScanner, c *model.Customer) error {
    return s.Scan(&c.ID, &c.FullName, &c.BusinessName, &c.Email, &c.Phone, &c.BillingAddress, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
}

// List returns all customers ordered by name.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
    rows, err := r.DB.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY full_name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.Customer{}
    for rows.Next() {
        var c model.Customer
        if err := scanCustomer(rows, &c); err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// GetByID returns the customer or ErrNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
    var c model.Customer
    err := scanCustomer(r.DB.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id), &c)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &c, nil
}

// Delete removes a customer.  The delete is refused with ErrConflict
// while any gig still references the customer.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (err error) {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        } else {
            err = tx.Commit()
        }
    }()
    var exists int
    err = tx.QueryRowContext(ctx, `SELECT 1 FROM customers WHERE id = ? FOR UPDATE`, id).Scan(&exists)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrNotFound
        }
        return err
    }
    var gigCount int
    if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM gigs WHERE customer_id = ?`, id).Scan(&gigCount); err != nil {
        return err
    }
    if gigCount > 0 {
        return ErrConflict
    }
    _, err = tx.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
    return err
}
