package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// AssignmentRepo reads gig_assignments.  Assignments are created outside
// this service; only read paths live here.
type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

const assignmentColumns = `a.id, a.gig_id, a.dj_id, a.pay_rate, a.pay_type, a.total_payout, a.created_at, a.updated_at`

// ListAll returns every assignment regardless of the gig's status.
func (r *AssignmentRepo) ListAll(ctx context.Context) ([]model.GigAssignment, error) {
    return r.query(ctx, `SELECT `+assignmentColumns+` FROM gig_assignments a`)
}

func (r *AssignmentRepo) query(ctx context.Context, q string, args ...any) ([]model.GigAssignment, error) {
    rows, err := r.DB.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.GigAssignment{}
    for rows.Next() {
        var a model.GigAssignment
        if err := rows.Scan(&a.ID, &a.GigID, &a.DJID, &a.PayRate, &a.PayType, &a.TotalPayout, &a.CreatedAt, &a.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, a)
    }
    return out, rows.Err()
}

const payoutSelect = `SELECT a.id, a.gig_id, d.full_name, c.full_name, g.start_datetime, a.total_payout
    FROM gig_assignments a
    JOIN gigs g ON g.id = a.gig_id
    JOIN customers c ON c.id = g.customer_id
    JOIN dj_profiles d ON d.id = a.dj_id`

// ListPayouts returns payout lines for all DJs, newest gigs first.
func (r *AssignmentRepo) ListPayouts(ctx context.Context) ([]model.PayoutLine, error) {
    return r.payouts(ctx, payoutSelect+` ORDER BY g.start_datetime DESC`)
}

// ListPayoutsForDJ returns the payout lines of one DJ.
func (r *AssignmentRepo) ListPayoutsForDJ(ctx context.Context, djID string) ([]model.PayoutLine, error) {
    return r.payouts(ctx, payoutSelect+` WHERE a.dj_id = ? ORDER BY g.start_datetime DESC`, djID)
}

func (r *AssignmentRepo) payouts(ctx context.Context, q string, args ...any) ([]model.PayoutLine, error) {
    rows, err := r.DB.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.PayoutLine{}
    for rows.Next() {
        var p model.PayoutLine
        if err := rows.Scan(&p.AssignmentID, &p.GigID, &p.DJName, &p.CustomerName, &p.GigStartAt, &p.TotalPayout); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// ScheduleForDJ lists the gigs a DJ is assigned to, soonest first.
func (r *AssignmentRepo) ScheduleForDJ(ctx context.Context, djID string) ([]model.ScheduleEntry, error) {
    const q = `SELECT a.id, g.id, g.start_datetime, g.end_datetime, g.status, v.name, c.full_name, a.pay_type, a.total_payout
        FROM gig_assignments a
        JOIN gigs g ON g.id = a.gig_id
        JOIN venues v ON v.id = g.venue_id
        JOIN customers c ON c.id = g.customer_id
        WHERE a.dj_id = ?
        ORDER BY g.start_datetime ASC`
    rows, err := r.DB.QueryContext(ctx, q, djID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.ScheduleEntry{}
    for rows.Next() {
        var e model.ScheduleEntry
        if err := rows.Scan(&e.AssignmentID, &e.GigID, &e.StartAt, &e.EndAt, &e.Status, &e.VenueName, &e.CustomerName, &e.PayType, &e.TotalPayout); err != nil {
            return nil, err
        }
        out = append(out, e)
    }
    return out, rows.Err()
}
