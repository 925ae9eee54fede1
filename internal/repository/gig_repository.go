package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

const gigColumns = `g.id, g.customer_id, g.venue_id, g.start_datetime, g.end_datetime,
       g.quoted_amount, g.invoiced_amount, g.amount_received, g.status,
       COALESCE(g.is_recurring, 0), g.frequency, g.recurrence_count, g.parent_gig_id,
       g.created_by, g.created_at, g.updated_at`

// GigRepo manages persistence for gigs.
type GigRepo struct{ DB *sql.DB }

func NewGigRepo(db *sql.DB) *GigRepo { return &GigRepo{DB: db} }

// CreateSeries stores a gig together with the occurrences generated for
// it in a single transaction.  A parent without recurrence passes no
// occurrences.  IDs and timestamps are assigned here; every occurrence is
// pointed at the parent.  On any failure the transaction is rolled back
// and the returned error wraps ErrSeriesNotCreated.
func (r *GigRepo) CreateSeries(ctx context.Context, parent *model.Gig, occurrences []model.Gig) (err error) {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return fmt.Errorf("%w: begin: %w", ErrSeriesNotCreated, err)
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    now := time.Now().UTC().Truncate(time.Second)
    if parent.ID == "" {
        parent.ID = uuid.NewString()
    }
    parent.CreatedAt, parent.UpdatedAt = now, now
    for i := range occurrences {
        occurrences[i].ID = uuid.NewString()
        occurrences[i].ParentGigID = &parent.ID
        occurrences[i].CreatedAt, occurrences[i].UpdatedAt = now, now
    }

    if err = insertGigs(ctx, tx, []model.Gig{*parent}); err != nil {
        return fmt.Errorf("%w: insert parent: %w", ErrSeriesNotCreated, err)
    }
    if err = insertGigs(ctx, tx, occurrences); err != nil {
        return fmt.Errorf("%w: insert %d occurrences: %w", ErrSeriesNotCreated, len(occurrences), err)
    }
    if err = tx.Commit(); err != nil {
        return fmt.Errorf("%w: commit: %w", ErrSeriesNotCreated, err)
    }
    return nil
}

// insertGigs writes all rows with one multi-row INSERT.
func insertGigs(ctx context.Context, tx *sql.Tx, gigs []model.Gig) error {
    if len(gigs) == 0 {
        return nil
    }
    const cols = 16
    var q strings.Builder
    q.WriteString(`INSERT INTO gigs (id, customer_id, venue_id, start_datetime, end_datetime,
        quoted_amount, invoiced_amount, amount_received, status, is_recurring, frequency,
        recurrence_count, parent_gig_id, created_by, created_at, updated_at) VALUES `)
    args := make([]any, 0, len(gigs)*cols)
    for i, g := range gigs {
        if i > 0 {
            q.WriteString(",")
        }
        q.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
        args = append(args,
            g.ID, g.CustomerID, g.VenueID, g.StartAt.UTC(), g.EndAt.UTC(),
            g.QuotedAmount, g.InvoicedAmount, g.AmountReceived, string(g.Status), g.IsRecurring, g.Frequency,
            g.RecurrenceCount, g.ParentGigID, g.CreatedBy, g.CreatedAt, g.UpdatedAt,
        )
    }
    _, err := tx.ExecContext(ctx, q.String(), args...)
    return err
}

func scanGig(s rowScanner, g *model.Gig, extra ...any) error {
    dest := []any{
        &g.ID, &g.CustomerID, &g.VenueID, &g.StartAt, &g.EndAt,
        &g.QuotedAmount, &g.InvoicedAmount, &g.AmountReceived, &g.Status,
        &g.IsRecurring, &g.Frequency, &g.RecurrenceCount, &g.ParentGigID,
        &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
    }
    return s.Scan(append(dest, extra...)...)
}

// GetByID retrieves a gig.  It returns ErrNotFound when there is no row.
func (r *GigRepo) GetByID(ctx context.Context, id string) (*model.Gig, error) {
    q := `SELECT ` + gigColumns + ` FROM gigs g WHERE g.id = ?`
    var g model.Gig
    if err := scanGig(r.DB.QueryRowContext(ctx, q, id), &g); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return &g, nil
}

// List returns every gig with its customer and venue names, ordered by
// start time ascending.
func (r *GigRepo) List(ctx context.Context) ([]model.GigListItem, error) {
    q := `SELECT ` + gigColumns + `, c.full_name, c.business_name, v.name
          FROM gigs g
          JOIN customers c ON c.id = g.customer_id
          JOIN venues v ON v.id = g.venue_id
          ORDER BY g.start_datetime ASC`
    rows, err := r.DB.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    items := []model.GigListItem{}
    for rows.Next() {
        var it model.GigListItem
        if err := scanGig(rows, &it.Gig, &it.CustomerName, &it.CustomerBusinessName, &it.VenueName); err != nil {
            return nil, err
        }
        items = append(items, it)
    }
    return items, rows.Err()
}

// ListOccurrences returns the gigs generated for a recurring parent.
func (r *GigRepo) ListOccurrences(ctx context.Context, parentID string) ([]model.Gig, error) {
    q := `SELECT ` + gigColumns + ` FROM gigs g WHERE g.parent_gig_id = ? ORDER BY g.start_datetime ASC`
    return r.queryGigs(ctx, q, parentID)
}

// ListAll returns every gig; the billing summary totals it.
func (r *GigRepo) ListAll(ctx context.Context) ([]model.Gig, error) {
    q := `SELECT ` + gigColumns + ` FROM gigs g`
    return r.queryGigs(ctx, q)
}

func (r *GigRepo) queryGigs(ctx context.Context, q string, args ...any) ([]model.Gig, error) {
    rows, err := r.DB.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    gigs := []model.Gig{}
    for rows.Next() {
        var g model.Gig
        if err := scanGig(rows, &g); err != nil {
            return nil, err
        }
        gigs = append(gigs, g)
    }
    return gigs, rows.Err()
}

// ListInvoices returns the per-gig lines of the invoices table, newest
// gigs first.
func (r *GigRepo) ListInvoices(ctx context.Context) ([]model.InvoiceLine, error) {
    const q = `SELECT g.id, c.full_name, g.start_datetime, g.quoted_amount, g.invoiced_amount, g.amount_received, g.status
               FROM gigs g
               JOIN customers c ON c.id = g.customer_id
               ORDER BY g.start_datetime DESC`
    rows, err := r.DB.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    lines := []model.InvoiceLine{}
    for rows.Next() {
        var l model.InvoiceLine
        if err := rows.Scan(&l.GigID, &l.CustomerName, &l.StartAt, &l.QuotedAmount, &l.InvoicedAmount, &l.AmountReceived, &l.Status); err != nil {
            return nil, err
        }
        lines = append(lines, l)
    }
    return lines, rows.Err()
}
