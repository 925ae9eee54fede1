// Package screens picks the navigation set a signed-in user sees.  It only
// decides what is shown; data access is enforced by the JWT and role
// middleware and by the repositories.
package screens

import "github.com/iliyamo/gig-booking-dashboard/internal/model"

// Kind identifies a screen set.
type Kind string

const (
    // KindUnauthorized is returned for users without a usable role.  It is
    // a state of its own, never a fallback to one of the other sets.
    KindUnauthorized Kind = "unauthorized"
    KindAdmin        Kind = "admin"
    KindDJ           Kind = "dj"
)

// Screen is one navigation entry.
type Screen struct {
    Key   string `json:"key"`
    Label string `json:"label"`
    Path  string `json:"path"`
}

// ScreenSet is the navigation a role gets.  Landing is where the
// dashboard redirects after sign-in; it is empty when unauthorized.
type ScreenSet struct {
    Kind    Kind     `json:"kind"`
    Landing string   `json:"landing,omitempty"`
    Screens []Screen `json:"screens"`
}

var adminScreens = []Screen{
    {Key: "customers", Label: "Customers", Path: "/dashboard/customers"},
    {Key: "venues", Label: "Venues", Path: "/dashboard/venues"},
    {Key: "gigs", Label: "Gigs", Path: "/dashboard/gigs"},
    {Key: "djs", Label: "DJs", Path: "/dashboard/djs"},
    {Key: "billing", Label: "Billing", Path: "/dashboard/billing"},
}

var djScreens = []Screen{
    {Key: "schedule", Label: "My Schedule", Path: "/dashboard/schedule"},
    {Key: "payouts", Label: "My Payouts", Path: "/dashboard/payouts"},
}

// Select maps a role to its screen set.
func Select(role model.AppRole) ScreenSet {
    switch role {
    case model.RoleAdmin:
        return ScreenSet{Kind: KindAdmin, Landing: adminScreens[0].Path, Screens: clone(adminScreens)}
    case model.RoleDJ:
        return ScreenSet{Kind: KindDJ, Landing: djScreens[0].Path, Screens: clone(djScreens)}
    }
    return ScreenSet{Kind: KindUnauthorized, Screens: []Screen{}}
}

// Authorized reports whether the set grants any screens at all.
func (s ScreenSet) Authorized() bool { return s.Kind != KindUnauthorized }

// callers get their own copy so the package tables stay immutable
func clone(in []Screen) []Screen {
    out := make([]Screen, len(in))
    copy(out, in)
    return out
}
