package model

import "time"

// AppRole mirrors the app_role enum.  The zero value means the user has
// no role row yet.
type AppRole string

const (
    RoleAdmin AppRole = "admin"
    RoleDJ    AppRole = "dj"
)

// Valid reports whether r is a grantable role.
func (r AppRole) Valid() bool { return r == RoleAdmin || r == RoleDJ }

// User represents an application user record as stored in the
// `users` table.  The json tags are omitted because handlers build
// their own response types.
//
// Fields:
//  ID           – uuid primary key, shared with profiles and dj_profiles.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  IsActive     – whether the account can sign in.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           string
    Email        string
    PasswordHash string
    IsActive     bool
    CreatedAt    time.Time
    UpdatedAt    time.Time
}

// Profile is the display information kept in `profiles`.
type Profile struct {
    ID        string    `json:"id"`
    Email     string    `json:"email"`
    FullName  string    `json:"full_name"`
    Phone     *string   `json:"phone"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA‑256 hash of the token is stored.
type RefreshToken struct {
    ID        uint64
    UserID    string
    TokenHash string
    ExpiresAt time.Time
    RevokedAt *time.Time
    CreatedAt time.Time
}

// AuditEntry is a row of `audit_logs`.
type AuditEntry struct {
    ID        string
    TableName string
    RecordID  string
    Action    string
    ChangedBy string
    ChangedAt time.Time
}
