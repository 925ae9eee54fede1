// Package billing computes the dashboard's financial totals from gigs and
// DJ assignments.
package billing

import (
    "errors"
    "fmt"

    "github.com/shopspring/decimal"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// ErrMalformedAmount is returned when a stored amount is negative.
var ErrMalformedAmount = errors.New("malformed amount")

// Summary holds the four totals shown on the billing screen.
//
// PendingPayouts is the sum of every assignment's total payout.  It is not
// filtered by gig or payment status; the name is kept from the screen it
// feeds.
type Summary struct {
    TotalQuoted    decimal.Decimal `json:"total_quoted"`
    TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
    TotalReceived  decimal.Decimal `json:"total_received"`
    PendingPayouts decimal.Decimal `json:"pending_payouts"`
}

// Summarize totals the given snapshot.  Missing invoiced/received values
// count as zero.  The inputs are only read.
func Summarize(gigs []model.Gig, assignments []model.GigAssignment) (Summary, error) {
    s := Summary{
        TotalQuoted:    decimal.Zero,
        TotalInvoiced:  decimal.Zero,
        TotalReceived:  decimal.Zero,
        PendingPayouts: decimal.Zero,
    }
    for _, g := range gigs {
        if err := checkAmount(g.QuotedAmount, "gig", g.ID, "quoted_amount"); err != nil {
            return Summary{}, err
        }
        s.TotalQuoted = s.TotalQuoted.Add(g.QuotedAmount)

        invoiced := orZero(g.InvoicedAmount)
        if err := checkAmount(invoiced, "gig", g.ID, "invoiced_amount"); err != nil {
            return Summary{}, err
        }
        s.TotalInvoiced = s.TotalInvoiced.Add(invoiced)

        received := orZero(g.AmountReceived)
        if err := checkAmount(received, "gig", g.ID, "amount_received"); err != nil {
            return Summary{}, err
        }
        s.TotalReceived = s.TotalReceived.Add(received)
    }
    payouts, err := SumPayouts(assignments)
    if err != nil {
        return Summary{}, err
    }
    s.PendingPayouts = payouts
    return s, nil
}

// SumPayouts totals assignment payouts.
func SumPayouts(assignments []model.GigAssignment) (decimal.Decimal, error) {
    total := decimal.Zero
    for _, a := range assignments {
        if err := checkAmount(a.TotalPayout, "assignment", a.ID, "total_payout"); err != nil {
            return decimal.Zero, err
        }
        total = total.Add(a.TotalPayout)
    }
    return total, nil
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
    if !d.Valid {
        return decimal.Zero
    }
    return d.Decimal
}

func checkAmount(d decimal.Decimal, kind, id, field string) error {
    if d.IsNegative() {
        return fmt.Errorf("%s %s: %s=%s: %w", kind, id, field, d.String(), ErrMalformedAmount)
    }
    return nil
}

// SumPayoutLines totals the payout lines of a payout table, so the total
// shown always matches the rows shown with it.
func SumPayoutLines(lines []model.PayoutLine) (decimal.Decimal, error) {
    total := decimal.Zero
    for _, l := range lines {
        if err := checkAmount(l.TotalPayout, "assignment", l.AssignmentID, "total_payout"); err != nil {
            return decimal.Zero, err
        }
        total = total.Add(l.TotalPayout)
    }
    return total, nil
}
