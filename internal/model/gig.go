package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// GigStatus mirrors the gig_status enum.
type GigStatus string

const (
    GigStatusDraft      GigStatus = "draft"
    GigStatusScheduled  GigStatus = "scheduled"
    GigStatusInProgress GigStatus = "in_progress"
    GigStatusCompleted  GigStatus = "completed"
    GigStatusCanceled   GigStatus = "canceled"
)

// Valid reports whether s is one of the gig_status values.
func (s GigStatus) Valid() bool {
    switch s {
    case GigStatusDraft, GigStatusScheduled, GigStatusInProgress, GigStatusCompleted, GigStatusCanceled:
        return true
    }
    return false
}

// Frequency mirrors the gig_frequency enum.
type Frequency string

const (
    FrequencyWeekly   Frequency = "weekly"
    FrequencyBiWeekly Frequency = "bi-weekly"
    FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is one of the gig_frequency values.
func (f Frequency) Valid() bool {
    return f == FrequencyWeekly || f == FrequencyBiWeekly || f == FrequencyMonthly
}

// PayType mirrors the pay_type enum.
type PayType string

const (
    PayTypeFlat       PayType = "flat"
    PayTypeHourly     PayType = "hourly"
    PayTypePercentage PayType = "percentage"
)

// Gig is a bookable engagement with a customer at a venue.  A gig that
// was generated from a recurring series carries ParentGigID and always
// has IsRecurring=false; only the parent holds the recurrence settings.
//
// Fields:
//  ID              – gigs.id (uuid).
//  CustomerID      – customer being served.
//  VenueID         – venue where the gig happens.
//  StartAt, EndAt  – gigs.start_datetime / gigs.end_datetime (UTC in the DB).
//  QuotedAmount    – price quoted to the customer.
//  InvoicedAmount  – amount invoiced so far (nullable).
//  AmountReceived  – amount paid by the customer so far (nullable).
//  Status          – gig_status value; new gigs start as draft.
//  IsRecurring     – true only on the parent of a series.
//  Frequency       – recurrence frequency of the parent (nullable).
//  RecurrenceCount – total occurrences including the parent (nullable).
//  ParentGigID     – parent of a generated occurrence (nullable).
//  CreatedBy       – user who created the row (nullable).
type Gig struct {
    ID              string              `json:"id"`
    CustomerID      string              `json:"customer_id"`
    VenueID         string              `json:"venue_id"`
    StartAt         time.Time           `json:"start_datetime"`
    EndAt           time.Time           `json:"end_datetime"`
    QuotedAmount    decimal.Decimal     `json:"quoted_amount"`
    InvoicedAmount  decimal.NullDecimal `json:"invoiced_amount"`
    AmountReceived  decimal.NullDecimal `json:"amount_received"`
    Status          GigStatus           `json:"status"`
    IsRecurring     bool                `json:"is_recurring"`
    Frequency       *Frequency          `json:"frequency"`
    RecurrenceCount *int                `json:"recurrence_count"`
    ParentGigID     *string             `json:"parent_gig_id"`
    CreatedBy       *string             `json:"created_by,omitempty"`
    CreatedAt       time.Time           `json:"created_at"`
    UpdatedAt       time.Time           `json:"updated_at"`
}

// GigListItem is a gig joined with the display names shown in list views.
type GigListItem struct {
    Gig
    CustomerName         string  `json:"customer_name"`
    CustomerBusinessName *string `json:"customer_business_name"`
    VenueName            string  `json:"venue_name"`
}

// GigAssignment binds a DJ to a gig with payout terms.  TotalPayout is
// computed when the assignment is made and stored as-is.
type GigAssignment struct {
    ID          string          `json:"id"`
    GigID       string          `json:"gig_id"`
    DJID        string          `json:"dj_id"`
    PayRate     decimal.Decimal `json:"pay_rate"`
    PayType     PayType         `json:"pay_type"`
    TotalPayout decimal.Decimal `json:"total_payout"`
    CreatedAt   time.Time       `json:"created_at"`
    UpdatedAt   time.Time       `json:"updated_at"`
}

// PayoutLine is an assignment joined with the names shown on payout tables.
type PayoutLine struct {
    AssignmentID string          `json:"assignment_id"`
    GigID        string          `json:"gig_id"`
    DJName       string          `json:"dj_name"`
    CustomerName string          `json:"customer_name"`
    GigStartAt   time.Time       `json:"gig_start_datetime"`
    TotalPayout  decimal.Decimal `json:"total_payout"`
}

// ScheduleEntry is one gig on a DJ's own schedule.
type ScheduleEntry struct {
    AssignmentID string          `json:"assignment_id"`
    GigID        string          `json:"gig_id"`
    StartAt      time.Time       `json:"start_datetime"`
    EndAt        time.Time       `json:"end_datetime"`
    Status       GigStatus       `json:"status"`
    VenueName    string          `json:"venue_name"`
    CustomerName string          `json:"customer_name"`
    PayType      PayType         `json:"pay_type"`
    TotalPayout  decimal.Decimal `json:"total_payout"`
}

// InvoiceLine is one row of the billing screen's invoices table.
type InvoiceLine struct {
    GigID          string              `json:"gig_id"`
    CustomerName   string              `json:"customer_name"`
    StartAt        time.Time           `json:"start_datetime"`
    QuotedAmount   decimal.Decimal     `json:"quoted_amount"`
    InvoicedAmount decimal.NullDecimal `json:"invoiced_amount"`
    AmountReceived decimal.NullDecimal `json:"amount_received"`
    Status         GigStatus           `json:"status"`
}
