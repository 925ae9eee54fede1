package model

import "time"

// VenueType is a free-form category such as "Bar" or "Wedding hall".
type VenueType struct {
    ID        string    `json:"id"`
    Name      string    `json:"name"`
    CreatedAt time.Time `json:"created_at"`
}

// Venue is a place where gigs happen.  VenueTypeName is filled by list
// queries that join venue_types.
type Venue struct {
    ID            string    `json:"id"`
    Name          string    `json:"name"`
    VenueTypeID   *string   `json:"venue_type_id"`
    VenueTypeName *string   `json:"venue_type_name,omitempty"`
    Address       Address   `json:"address"`
    CreatedBy     *string   `json:"created_by,omitempty"`
    CreatedAt     time.Time `json:"created_at"`
    UpdatedAt     time.Time `json:"updated_at"`
}
