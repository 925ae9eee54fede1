package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/google/uuid"

    "github.com/iliyamo/gig-booking-dashboard/internal/database"
    "github.com/iliyamo/gig-booking-dashboard/internal/model"
    "github.com/iliyamo/gig-booking-dashboard/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// NewAccount carries what is needed to create a user and its profile.
type NewAccount struct {
    Email    string
    Password string
    FullName string
    Phone    *string
}

// Create inserts the user and its profile row and returns the new ID.
// No role is granted; that is an admin decision.
func (r *UserRepo) Create(ctx context.Context, in NewAccount, cost int) (string, error) {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return "", err
    }
    defer tx.Rollback()

    id, err := createAccountTx(ctx, tx, in, cost)
    if err != nil {
        return "", err
    }
    if err := tx.Commit(); err != nil {
        return "", err
    }
    return id, nil
}

// createAccountTx writes users and profiles rows inside tx.
func createAccountTx(ctx context.Context, tx *sql.Tx, in NewAccount, cost int) (string, error) {
    email := normalizeEmail(in.Email)
    hash, err := utils.HashPassword(in.Password, cost)
    if err != nil {
        return "", err
    }
    id := uuid.NewString()
    if _, err := tx.ExecContext(ctx,
        "INSERT INTO users (id, email, password_hash) VALUES (?,?,?)",
        id, email, hash); err != nil {
        if database.IsDuplicate(err) {
            return "", ErrEmailExists
        }
        return "", err
    }
    if _, err := tx.ExecContext(ctx,
        "INSERT INTO profiles (id, email, full_name, phone) VALUES (?,?,?,?)",
        id, email, strings.TrimSpace(in.FullName), in.Phone); err != nil {
        return "", err
    }
    return id, nil
}

func normalizeEmail(email string) string {
    return strings.ToLower(strings.TrimSpace(email))
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    var u model.User
    err := r.DB.QueryRowContext(ctx,
        "SELECT id,email,password_hash,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
        normalizeEmail(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
    var u model.User
    err := r.DB.QueryRowContext(ctx,
        "SELECT id,email,password_hash,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
        id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    return u, err
}

// GetProfile returns the display profile of a user.
func (r *UserRepo) GetProfile(ctx context.Context, id string) (model.Profile, error) {
    var p model.Profile
    err := r.DB.QueryRowContext(ctx,
        "SELECT id,email,full_name,phone,created_at,updated_at FROM profiles WHERE id=? LIMIT 1",
        id).Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return p, ErrNotFound
    }
    return p, err
}

// GetRole returns the user's application role, or "" when none is
// assigned.
func (r *UserRepo) GetRole(ctx context.Context, userID string) (model.AppRole, error) {
    var role string
    err := r.DB.QueryRowContext(ctx,
        "SELECT role FROM user_roles WHERE user_id=? LIMIT 1", userID).Scan(&role)
    if errors.Is(err, sql.ErrNoRows) {
        return "", nil
    }
    if err != nil {
        return "", err
    }
    return model.AppRole(role), nil
}

// SetRole assigns role to the user, replacing any previous role.
func (r *UserRepo) SetRole(ctx context.Context, userID string, role model.AppRole) error {
    return setRole(ctx, r.DB, userID, role)
}

type execer interface {
    ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setRole(ctx context.Context, db execer, userID string, role model.AppRole) error {
    _, err := db.ExecContext(ctx,
        "INSERT INTO user_roles (id, user_id, role) VALUES (?,?,?) ON DUPLICATE KEY UPDATE role=VALUES(role)",
        uuid.NewString(), userID, string(role))
    if database.IsForeignKey(err) {
        return ErrNotFound
    }
    return err
}

// EnsureAdmin creates the account if the email is unknown and grants it
// the admin role.  It reports whether a new account was created.
func (r *UserRepo) EnsureAdmin(ctx context.Context, email, password string, cost int) (bool, error) {
    u, err := r.GetByEmail(ctx, email)
    switch {
    case err == nil:
        return false, r.SetRole(ctx, u.ID, model.RoleAdmin)
    case !errors.Is(err, sql.ErrNoRows):
        return false, err
    }

    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return false, err
    }
    defer tx.Rollback()
    id, err := createAccountTx(ctx, tx, NewAccount{Email: email, Password: password, FullName: "Administrator"}, cost)
    if err != nil {
        return false, err
    }
    if err := setRole(ctx, tx, id, model.RoleAdmin); err != nil {
        return false, err
    }
    return true, tx.Commit()
}

