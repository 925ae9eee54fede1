package model

import "time"

// Customer is a person or business that books gigs.
type Customer struct {
    ID             string          `json:"id"`
    FullName       string          `json:"full_name"`
    BusinessName   *string         `json:"business_name"`
    Email          string          `json:"email"`
    Phone          string          `json:"phone"`
    BillingAddress *BillingAddress `json:"billing_address"`
    CreatedBy      *string         `json:"created_by,omitempty"`
    CreatedAt      time.Time       `json:"created_at"`
    UpdatedAt      time.Time       `json:"updated_at"`
}
