// Package recurrence expands the parent gig of a recurring series into
// the sibling occurrences that are stored next to it.
package recurrence

import (
    "time"

    "github.com/shopspring/decimal"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// Parent is the first gig of a series.  Count is the total number of
// gigs in the series, the parent included.
type Parent struct {
    ID           string
    CustomerID   string
    VenueID      string
    Start        time.Time
    End          time.Time
    QuotedAmount decimal.Decimal
    Frequency    model.Frequency
    Count        int
}

// Occurrence is one generated sibling of a parent gig.
type Occurrence struct {
    CustomerID   string
    VenueID      string
    Start        time.Time
    End          time.Time
    QuotedAmount decimal.Decimal
    Status       model.GigStatus
    IsRecurring  bool
    ParentGigID  string
}

// Expand returns occurrences 2..p.Count of the series.  Each start is
// offset from the parent's start (not from the previous occurrence) and
// each occurrence keeps the parent's duration.  A count below 2 or an
// unknown frequency yields no occurrences.
//
// Monthly offsets use time.AddDate in the parent's location, so a day
// that does not exist in the target month rolls over: Jan 31 + 1 month
// is Mar 2 in a leap year.
func Expand(p Parent) []Occurrence {
    if p.Count < 2 || !p.Frequency.Valid() {
        return nil
    }
    duration := p.End.Sub(p.Start)
    out := make([]Occurrence, 0, p.Count-1)
    for i := 1; i < p.Count; i++ {
        start := shift(p.Start, p.Frequency, i)
        out = append(out, Occurrence{
            CustomerID:   p.CustomerID,
            VenueID:      p.VenueID,
            Start:        start,
            End:          start.Add(duration),
            QuotedAmount: p.QuotedAmount,
            Status:       model.GigStatusDraft,
            IsRecurring:  false,
            ParentGigID:  p.ID,
        })
    }
    return out
}

func shift(start time.Time, f model.Frequency, i int) time.Time {
    switch f {
    case model.FrequencyWeekly:
        return start.AddDate(0, 0, 7*i)
    case model.FrequencyBiWeekly:
        return start.AddDate(0, 0, 14*i)
    default: // monthly
        return start.AddDate(0, i, 0)
    }
}

// Gig converts the occurrence into a gig row ready to insert.  The ID is
// left empty for the repository to assign.
func (o Occurrence) Gig(createdBy *string) model.Gig {
    parent := o.ParentGigID
    return model.Gig{
        CustomerID:   o.CustomerID,
        VenueID:      o.VenueID,
        StartAt:      o.Start,
        EndAt:        o.End,
        QuotedAmount: o.QuotedAmount,
        Status:       o.Status,
        IsRecurring:  o.IsRecurring,
        ParentGigID:  &parent,
        CreatedBy:    createdBy,
    }
}
