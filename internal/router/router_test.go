package router

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/gig-booking-dashboard/internal/config"
	"github.com/iliyamo/gig-booking-dashboard/internal/handler"
	"github.com/iliyamo/gig-booking-dashboard/internal/middleware"
	"github.com/iliyamo/gig-booking-dashboard/internal/queue"
	"github.com/iliyamo/gig-booking-dashboard/internal/repository"
	"github.com/iliyamo/gig-booking-dashboard/internal/utils"
)

const secret = "router-secret"

type discard struct{}

func (discard) Notify(queue.DataChangedEvent) {}

func newServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{JWTSecret: secret, AccessTTLMin: 5, RefreshTTLDays: 1, BcryptCost: 4, Location: time.UTC}
	e := echo.New()
	users := repository.NewUserRepo(db)
	assignments := repository.NewAssignmentRepo(db)
	RegisterAuth(e, handler.NewAuthHandler(cfg, users, repository.NewTokenRepo(db), zap.NewNop()), secret,
		func(next echo.HandlerFunc) echo.HandlerFunc { return next })
	RegisterAdmin(e, handler.NewAdminHandler(cfg, handler.AdminDeps{
		Customers:   repository.NewCustomerRepo(db),
		Venues:      repository.NewVenueRepo(db),
		Gigs:        repository.NewGigRepo(db),
		Assignments: assignments,
		DJs:         repository.NewDJRepo(db),
		Users:       users,
	}, discard{}, zap.NewNop()), secret, middleware.NewResponseCache(config.CacheConfig{}, nil))
	RegisterDJ(e, handler.NewDJHandler(assignments, zap.NewNop()), secret)
	return e, mock
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(secret, "u1", role, 5)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func do(e *echo.Echo, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutesNeedAdminRole(t *testing.T) {
	e, _ := newServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/v1/admin/customers", "").Code)
	assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/v1/admin/customers", bearer(t, "dj")).Code)
	assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/v1/admin/customers", bearer(t, "")).Code)
}

func TestDJRoutesNeedDJRole(t *testing.T) {
	e, _ := newServer(t)
	assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/v1/dj/schedule", bearer(t, "admin")).Code)
}

func TestAdminCanListCustomers(t *testing.T) {
	e, mock := newServer(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM customers ORDER BY full_name")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "business_name", "email", "phone",
			"billing_address", "created_by", "created_at", "updated_at"}))

	rec := do(e, http.MethodGet, "/v1/admin/customers", bearer(t, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNavigationOpenToUsersWithoutRole(t *testing.T) {
	e, mock := newServer(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM user_roles")).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	rec := do(e, http.MethodGet, "/v1/navigation", bearer(t, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"unauthorized"`)
}
