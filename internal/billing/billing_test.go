package billing

import (
    "sync"
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nullDec(s string) decimal.NullDecimal {
    return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func fixture() ([]model.Gig, []model.GigAssignment) {
    gigs := []model.Gig{
        {ID: "g1", QuotedAmount: dec("100"), AmountReceived: nullDec("50")},
        {ID: "g2", QuotedAmount: dec("200"), InvoicedAmount: nullDec("200"), AmountReceived: nullDec("200")},
    }
    assignments := []model.GigAssignment{
        {ID: "a1", TotalPayout: dec("75")},
        {ID: "a2", TotalPayout: dec("25")},
    }
    return gigs, assignments
}

func assertSummary(t *testing.T, s Summary, quoted, invoiced, received, payouts string) {
    t.Helper()
    assert.True(t, s.TotalQuoted.Equal(dec(quoted)), "quoted %s", s.TotalQuoted)
    assert.True(t, s.TotalInvoiced.Equal(dec(invoiced)), "invoiced %s", s.TotalInvoiced)
    assert.True(t, s.TotalReceived.Equal(dec(received)), "received %s", s.TotalReceived)
    assert.True(t, s.PendingPayouts.Equal(dec(payouts)), "payouts %s", s.PendingPayouts)
}

func TestSummarizeEmpty(t *testing.T) {
    s, err := Summarize(nil, nil)
    require.NoError(t, err)
    assertSummary(t, s, "0", "0", "0", "0")
}

func TestSummarizeFixture(t *testing.T) {
    gigs, assignments := fixture()
    s, err := Summarize(gigs, assignments)
    require.NoError(t, err)
    assertSummary(t, s, "300", "200", "250", "100")
}

func TestSummarizeExactCents(t *testing.T) {
    gigs := make([]model.Gig, 0, 10)
    for i := 0; i < 10; i++ {
        gigs = append(gigs, model.Gig{QuotedAmount: dec("0.10"), InvoicedAmount: nullDec("0.20")})
    }
    s, err := Summarize(gigs, []model.GigAssignment{{TotalPayout: dec("0.1")}, {TotalPayout: dec("0.2")}})
    require.NoError(t, err)
    assertSummary(t, s, "1", "2", "0", "0.3")
}

func TestSummarizePayoutsAreUnfiltered(t *testing.T) {
    // Payouts on completed and canceled gigs alike count toward the total.
    assignments := []model.GigAssignment{
        {ID: "done", GigID: "completed-gig", TotalPayout: dec("300")},
        {ID: "gone", GigID: "canceled-gig", TotalPayout: dec("120.50")},
    }
    s, err := Summarize(nil, assignments)
    require.NoError(t, err)
    assertSummary(t, s, "0", "0", "0", "420.50")
}

func TestSummarizeRejectsNegativeAmounts(t *testing.T) {
    cases := map[string]struct {
        gigs        []model.Gig
        assignments []model.GigAssignment
    }{
        "quoted":   {gigs: []model.Gig{{ID: "g", QuotedAmount: dec("-1")}}},
        "invoiced": {gigs: []model.Gig{{ID: "g", InvoicedAmount: nullDec("-0.01")}}},
        "received": {gigs: []model.Gig{{ID: "g", AmountReceived: nullDec("-5")}}},
        "payout":   {assignments: []model.GigAssignment{{ID: "a", TotalPayout: dec("-10")}}},
    }
    for name, tc := range cases {
        t.Run(name, func(t *testing.T) {
            _, err := Summarize(tc.gigs, tc.assignments)
            require.ErrorIs(t, err, ErrMalformedAmount)
        })
    }
}

func TestSummarizeIsRepeatable(t *testing.T) {
    gigs, assignments := fixture()
    first, err := Summarize(gigs, assignments)
    require.NoError(t, err)
    second, err := Summarize(gigs, assignments)
    require.NoError(t, err)
    assert.Equal(t, first.TotalQuoted.String(), second.TotalQuoted.String())
    assert.Equal(t, first.PendingPayouts.String(), second.PendingPayouts.String())
    assert.True(t, gigs[0].QuotedAmount.Equal(dec("100")))
    assert.False(t, gigs[0].InvoicedAmount.Valid)
}

func TestSummarizeConcurrent(t *testing.T) {
    gigs, assignments := fixture()
    var wg sync.WaitGroup
    results := make([]Summary, 16)
    for i := range results {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            s, err := Summarize(gigs, assignments)
            if err == nil {
                results[i] = s
            }
        }(i)
    }
    wg.Wait()
    for _, s := range results {
        assertSummary(t, s, "300", "200", "250", "100")
    }
}

func TestSumPayouts(t *testing.T) {
    _, assignments := fixture()
    total, err := SumPayouts(assignments)
    require.NoError(t, err)
    assert.True(t, total.Equal(dec("100")))

    total, err = SumPayouts(nil)
    require.NoError(t, err)
    assert.True(t, total.IsZero())
}

func TestSumPayoutLines(t *testing.T) {
    lines := []model.PayoutLine{
        {AssignmentID: "a1", TotalPayout: dec("150.25")},
        {AssignmentID: "a2", TotalPayout: dec("99.75")},
    }
    total, err := SumPayoutLines(lines)
    require.NoError(t, err)
    assert.Equal(t, "250", total.String())

    _, err = SumPayoutLines([]model.PayoutLine{{AssignmentID: "bad", TotalPayout: dec("-1")}})
    assert.ErrorIs(t, err, ErrMalformedAmount)
}
