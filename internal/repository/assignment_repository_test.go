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

func TestListAllAssignments(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    now := time.Now()
    mock.ExpectQuery(regexp.QuoteMeta("FROM gig_assignments a")).WillReturnRows(
        sqlmock.NewRows([]string{"id", "gig_id", "dj_id", "pay_rate", "pay_type", "total_payout", "created_at", "updated_at"}).
            AddRow("a1", "g1", "d1", "100.00", "flat", "100.00", now, now).
            AddRow("a2", "g2", "d1", "25.50", "hourly", "102.00", now, now))

    got, err := NewAssignmentRepo(db).ListAll(context.Background())
    require.NoError(t, err)
    require.Len(t, got, 2)
    assert.Equal(t, model.PayTypeHourly, got[1].PayType)
    assert.Equal(t, "102", got[1].TotalPayout.String())
}

func TestScheduleForDJ(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    start := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
    mock.ExpectQuery(regexp.QuoteMeta("WHERE a.dj_id = ?")).WithArgs("d1").WillReturnRows(
        sqlmock.NewRows([]string{"a", "g", "s", "e", "st", "v", "c", "pt", "tp"}).
            AddRow("a1", "g1", start, start.Add(4*time.Hour), "scheduled", "The Mohawk", "Jane", "flat", "250"))

    got, err := NewAssignmentRepo(db).ScheduleForDJ(context.Background(), "d1")
    require.NoError(t, err)
    require.Len(t, got, 1)
    assert.Equal(t, "The Mohawk", got[0].VenueName)
    assert.Equal(t, model.GigStatusScheduled, got[0].Status)
}

func TestListPayoutsNewestFirst(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    later := time.Date(2024, 7, 1, 20, 0, 0, 0, time.UTC)
    mock.ExpectQuery(regexp.QuoteMeta("JOIN dj_profiles d ON d.id = a.dj_id ORDER BY g.start_datetime DESC")).
        WillReturnRows(sqlmock.NewRows([]string{"a", "g", "dj", "c", "s", "tp"}).
            AddRow("a2", "g2", "DJ Nova", "Acme", later, "300.00").
            AddRow("a1", "g1", "DJ Nova", "Jane", later.AddDate(0, -1, 0), "150.00"))

    got, err := NewAssignmentRepo(db).ListPayouts(context.Background())
    require.NoError(t, err)
    require.Len(t, got, 2)
    assert.Equal(t, "a2", got[0].AssignmentID)
    assert.Equal(t, "DJ Nova", got[0].DJName)
    assert.Equal(t, "300", got[0].TotalPayout.String())
}
