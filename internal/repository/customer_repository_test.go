package repository

import (
    "context"
    "regexp"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

func TestCustomerCreateAssignsID(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).WillReturnResult(sqlmock.NewResult(0, 1))

    c := &model.Customer{FullName: "Jane Doe", Email: "jane@example.com", Phone: "555-0100",
        BillingAddress: &model.BillingAddress{Address: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}}
    require.NoError(t, NewCustomerRepo(db).Create(context.Background(), c))
    assert.Len(t, c.ID, 36)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDelete(t *testing.T) {
    tests := []struct {
        name    string
        setup   func(mock sqlmock.Sqlmock)
        wantErr error
    }{
        {
            name: "deleted",
            setup: func(mock sqlmock.Sqlmock) {
                mock.ExpectBegin()
                mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customers")).WithArgs("c1").
                    WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
                mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gigs")).WithArgs("c1").
                    WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
                mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers")).WithArgs("c1").
                    WillReturnResult(sqlmock.NewResult(0, 1))
                mock.ExpectCommit()
            },
        },
        {
            name: "referenced by gigs",
            setup: func(mock sqlmock.Sqlmock) {
                mock.ExpectBegin()
                mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customers")).WithArgs("c1").
                    WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
                mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gigs")).WithArgs("c1").
                    WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
                mock.ExpectRollback()
            },
            wantErr: ErrConflict,
        },
        {
            name: "missing",
            setup: func(mock sqlmock.Sqlmock) {
                mock.ExpectBegin()
                mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customers")).WithArgs("c1").
                    WillReturnRows(sqlmock.NewRows([]string{"1"}))
                mock.ExpectRollback()
            },
            wantErr: ErrNotFound,
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            db, mock, err := sqlmock.New()
            require.NoError(t, err)
            defer db.Close()
            tt.setup(mock)

            err = NewCustomerRepo(db).Delete(context.Background(), "c1")
            if tt.wantErr != nil {
                assert.ErrorIs(t, err, tt.wantErr)
            } else {
                assert.NoError(t, err)
            }
            assert.NoError(t, mock.ExpectationsWereMet())
        })
    }
}
