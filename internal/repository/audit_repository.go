package repository

import (
    "context"
    "database/sql"

    "github.com/google/uuid"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// AuditRepo appends rows to audit_logs.
type AuditRepo struct{ DB *sql.DB }

func NewAuditRepo(db *sql.DB) *AuditRepo { return &AuditRepo{DB: db} }

// Insert records one change.  An empty ID is generated.
func (r *AuditRepo) Insert(ctx context.Context, e model.AuditEntry) error {
    if e.ID == "" {
        e.ID = uuid.NewString()
    }
    var changedBy any
    if e.ChangedBy != "" {
        changedBy = e.ChangedBy
    }
    _, err := r.DB.ExecContext(ctx,
        `INSERT INTO audit_logs (id, table_name, record_id, action, changed_by, changed_at) VALUES (?,?,?,?,?,?)`,
        e.ID, e.TableName, e.RecordID, e.Action, changedBy, e.ChangedAt.UTC())
    return err
}
