// Package queue defines the data-changed messages exchanged over RabbitMQ
// and the background consumer that reacts to them.
package queue

import "time"

// Resource names carried by DataChangedEvent.  They double as the
// response cache groups.
const (
    ResourceCustomers  = "customers"
    ResourceVenues     = "venues"
    ResourceVenueTypes = "venue_types"
    ResourceGigs       = "gigs"
    ResourceDJs        = "djs"
    ResourceUserRoles  = "user_roles"
    ResourceBilling    = "billing"
)

// Actions carried by DataChangedEvent.
const (
    ActionCreate = "create"
    ActionUpdate = "update"
    ActionDelete = "delete"
)

// DataChangedEvent is published after a successful admin write.  The
// consumer drops cached reads of the affected resources and appends an
// audit_logs row.
type DataChangedEvent struct {
    Resource  string    `json:"resource"`
    Action    string    `json:"action"`
    RecordID  string    `json:"record_id"`
    ActorID   string    `json:"actor_id,omitempty"`
    ChangedAt time.Time `json:"changed_at"`
}

// auditTables maps a resource to the table recorded in audit_logs.
var auditTables = map[string]string{
    ResourceCustomers:  "customers",
    ResourceVenues:     "venues",
    ResourceVenueTypes: "venue_types",
    ResourceGigs:       "gigs",
    ResourceDJs:        "dj_profiles",
    ResourceUserRoles:  "user_roles",
}

// Table returns the audit_logs table_name for the event, or "" when the
// resource is unknown.
func (e DataChangedEvent) Table() string { return auditTables[e.Resource] }

// Affected lists the cache groups that may hold stale reads after a
// change to resource.  Gig lists show customer and venue names, and the
// billing screens total gigs and assignments.
func Affected(resource string) []string {
    switch resource {
    case ResourceCustomers:
        return []string{ResourceCustomers, ResourceGigs, ResourceBilling}
    case ResourceVenues:
        return []string{ResourceVenues, ResourceGigs}
    case ResourceVenueTypes:
        return []string{ResourceVenueTypes, ResourceVenues}
    case ResourceGigs:
        return []string{ResourceGigs, ResourceBilling}
    case ResourceDJs:
        return []string{ResourceDJs, ResourceBilling}
    }
    return nil
}
