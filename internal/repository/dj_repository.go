package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// DJRepo manages DJ accounts and their HR profiles.
type DJRepo struct{ DB *sql.DB }

func NewDJRepo(db *sql.DB) *DJRepo { return &DJRepo{DB: db} }

// NewDJ is the input of CreateWithAccount.  SSNSealed must already be
// sealed by the caller.
type NewDJ struct {
    Account          NewAccount
    DOB              string
    SSNSealed        string
    Address          model.Address
    EmploymentStatus model.EmploymentStatus
    EmergencyContact *model.EmergencyContact
}

// CreateWithAccount creates the login, the profile, the dj_profiles row
// and the dj role in one transaction.
func (r *DJRepo) CreateWithAccount(ctx context.Context, in NewDJ, cost int) (*model.DJProfile, error) {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer tx.Rollback()

    id, err := createAccountTx(ctx, tx, in.Account, cost)
    if err != nil {
        return nil, err
    }
    var emergency any
    if in.EmergencyContact != nil {
        emergency = *in.EmergencyContact
    }
    email := normalizeEmail(in.Account.Email)
    phone := ""
    if in.Account.Phone != nil {
        phone = *in.Account.Phone
    }
    if _, err := tx.ExecContext(ctx,
        `INSERT INTO dj_profiles (id, full_name, dob, ssn_encrypted, phone, email, address, employment_status, emergency_contacts)
         VALUES (?,?,?,?,?,?,?,?,?)`,
        id, in.Account.FullName, in.DOB, in.SSNSealed, phone, email, in.Address, string(in.EmploymentStatus), emergency); err != nil {
        return nil, err
    }
    if err := setRole(ctx, tx, id, model.RoleDJ); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    return r.get(ctx, id)
}

const djSelect = `SELECT d.id, d.full_name, DATE_FORMAT(d.dob, '%Y-%m-%d'), d.phone, d.email, d.address,
    d.employment_status, d.emergency_contacts, d.created_at, d.updated_at,
    (SELECT COUNT(*) FROM dj_documents dd WHERE dd.dj_id = d.id)
    FROM dj_profiles d`

func scanDJ(s rowScanner, d *model.DJProfile) error {
    return s.Scan(&d.ID, &d.FullName, &d.DOB, &d.Phone, &d.Email, &d.Address,
        &d.EmploymentStatus, &d.EmergencyContact, &d.CreatedAt, &d.UpdatedAt, &d.DocumentCount)
}

func (r *DJRepo) get(ctx context.Context, id string) (*model.DJProfile, error) {
    var d model.DJProfile
    if err := scanDJ(r.DB.QueryRowContext(ctx, djSelect+` WHERE d.id = ?`, id), &d); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return &d, nil
}

// List returns all DJs with their document counts.
func (r *DJRepo) List(ctx context.Context) ([]model.DJProfile, error) {
    rows, err := r.DB.QueryContext(ctx, djSelect+` ORDER BY d.full_name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.DJProfile{}
    for rows.Next() {
        var d model.DJProfile
        if err := scanDJ(rows, &d); err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}
