package repository

import (
    "context"
    "database/sql"
    "database/sql/driver"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/go-sql-driver/mysql"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

func TestGetRoleMissingRowIsEmpty(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM user_roles")).WithArgs("u1").
        WillReturnRows(sqlmock.NewRows([]string{"role"}))

    role, err := NewUserRepo(db).GetRole(context.Background(), "u1")
    require.NoError(t, err)
    assert.Equal(t, model.AppRole(""), role)
}

func TestGetRole(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM user_roles")).WithArgs("u1").
        WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("dj"))

    role, err := NewUserRepo(db).GetRole(context.Background(), "u1")
    require.NoError(t, err)
    assert.Equal(t, model.RoleDJ, role)
}

func TestSetRoleUnknownUser(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
        WithArgs(sqlmock.AnyArg(), "ghost", "admin").
        WillReturnError(&mysql.MySQLError{Number: 1452, Message: "fk"})

    err = NewUserRepo(db).SetRole(context.Background(), "ghost", model.RoleAdmin)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
        WithArgs(sqlmock.AnyArg(), "dup@example.com", sqlmock.AnyArg()).
        WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
    mock.ExpectRollback()

    _, err = NewUserRepo(db).Create(context.Background(),
        NewAccount{Email: "  Dup@Example.com ", Password: "secret123", FullName: "Dup"}, 4)
    assert.ErrorIs(t, err, ErrEmailExists)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureAdminExistingUser(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    now := time.Now()
    mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=?")).WithArgs("admin@example.com").
        WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "is_active", "created_at", "updated_at"}).
            AddRow("u1", "admin@example.com", "hash", true, now, now))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
        WithArgs(sqlmock.AnyArg(), "u1", "admin").WillReturnResult(sqlmock.NewResult(0, 1))

    created, err := NewUserRepo(db).EnsureAdmin(context.Background(), "admin@example.com", "pw", 4)
    require.NoError(t, err)
    assert.False(t, created)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=?")).WillReturnError(sql.ErrNoRows)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
        WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "admin").WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    created, err := NewUserRepo(db).EnsureAdmin(context.Background(), "admin@example.com", "pw123456", 4)
    require.NoError(t, err)
    assert.True(t, created)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateRefresh(t *testing.T) {
    cols := []string{"user_id", "expires_at", "revoked_at"}
    future := time.Now().UTC().Add(time.Hour)
    tests := []struct {
        name    string
        row     []driver.Value
        wantID  string
        wantErr bool
    }{
        {"valid", []driver.Value{"u1", future, nil}, "u1", false},
        {"revoked", []driver.Value{"u1", future, time.Now()}, "", true},
        {"expired", []driver.Value{"u1", time.Now().UTC().Add(-time.Hour), nil}, "", true},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            db, mock, err := sqlmock.New()
            require.NoError(t, err)
            defer db.Close()
            mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens")).WithArgs("h").
                WillReturnRows(sqlmock.NewRows(cols).AddRow(tt.row...))

            id, err := NewTokenRepo(db).ValidateRefresh(context.Background(), "h")
            if tt.wantErr {
                assert.ErrorIs(t, err, sql.ErrNoRows)
                return
            }
            require.NoError(t, err)
            assert.Equal(t, tt.wantID, id)
        })
    }
}
