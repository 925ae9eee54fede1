package repository

import (
    "context"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

var djCols = []string{"id", "full_name", "dob", "phone", "email", "address", "employment_status",
    "emergency_contacts", "created_at", "updated_at", "docs"}

func TestCreateDJWithAccount(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    now := time.Now().UTC()
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dj_profiles")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles")).
        WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "dj").WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()
    mock.ExpectQuery(regexp.QuoteMeta("FROM dj_profiles d WHERE d.id = ?")).
        WillReturnRows(sqlmock.NewRows(djCols).AddRow("d1", "DJ Nova", "1990-04-01", "555", "nova@example.com",
            `{"street":"1 Beat Ave","city":"Austin","state":"TX","zip":"78701"}`, "contractor",
            `{"name":"Mom","phone":"555-1"}`, now, now, 0))

    dj, err := NewDJRepo(db).CreateWithAccount(context.Background(), NewDJ{
        Account:          NewAccount{Email: "nova@example.com", Password: "secret123", FullName: "DJ Nova"},
        DOB:              "1990-04-01",
        SSNSealed:        "sealed",
        Address:          model.Address{Street: "1 Beat Ave", City: "Austin", State: "TX", Zip: "78701"},
        EmploymentStatus: model.EmploymentContractor,
    }, 4)
    require.NoError(t, err)
    assert.Equal(t, "Austin", dj.Address.City)
    require.NotNil(t, dj.EmergencyContact)
    assert.Equal(t, "Mom", dj.EmergencyContact.Name)
    assert.Empty(t, dj.SSNSealed)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDJRollsBackOnProfileError(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dj_profiles")).WillReturnError(assert.AnError)
    mock.ExpectRollback()

    _, err = NewDJRepo(db).CreateWithAccount(context.Background(), NewDJ{
        Account: NewAccount{Email: "x@example.com", Password: "secret123", FullName: "X"},
    }, 4)
    assert.ErrorIs(t, err, assert.AnError)
    assert.NoError(t, mock.ExpectationsWereMet())
}
