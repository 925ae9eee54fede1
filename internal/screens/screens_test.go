package screens

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

func keys(s ScreenSet) []string {
    out := make([]string, 0, len(s.Screens))
    for _, sc := range s.Screens {
        out = append(out, sc.Key)
    }
    return out
}

func TestSelectAdmin(t *testing.T) {
    s := Select(model.RoleAdmin)
    assert.Equal(t, KindAdmin, s.Kind)
    assert.Equal(t, []string{"customers", "venues", "gigs", "djs", "billing"}, keys(s))
    assert.Equal(t, "/dashboard/customers", s.Landing)
    assert.True(t, s.Authorized())
}

func TestSelectDJ(t *testing.T) {
    s := Select(model.RoleDJ)
    assert.Equal(t, KindDJ, s.Kind)
    assert.Equal(t, []string{"schedule", "payouts"}, keys(s))
    assert.Equal(t, "/dashboard/schedule", s.Landing)
}

func TestSelectWithoutRole(t *testing.T) {
    for _, role := range []model.AppRole{"", "owner", "ADMIN", "customer"} {
        s := Select(role)
        assert.Equal(t, KindUnauthorized, s.Kind, "role %q", role)
        assert.False(t, s.Authorized())
        assert.Empty(t, s.Landing)
        require.NotNil(t, s.Screens)
        assert.Empty(t, s.Screens)
        assert.NotEqual(t, Select(model.RoleAdmin).Kind, s.Kind)
        assert.NotEqual(t, Select(model.RoleDJ).Kind, s.Kind)
    }
}

func TestSelectReturnsIndependentCopies(t *testing.T) {
    s := Select(model.RoleAdmin)
    s.Screens[0].Label = "changed"
    assert.Equal(t, "Customers", Select(model.RoleAdmin).Screens[0].Label)
}
