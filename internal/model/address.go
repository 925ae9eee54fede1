package model

import (
    "database/sql/driver"
    "encoding/json"
    "errors"
)

// Address is stored as a JSON column on venues and dj_profiles.
type Address struct {
    Street string `json:"street"`
    City   string `json:"city"`
    State  string `json:"state"`
    Zip    string `json:"zip"`
}

func (a Address) Value() (driver.Value, error) { return json.Marshal(a) }
func (a *Address) Scan(src any) error         { return scanJSON(src, a) }

// BillingAddress is the customers.billing_address JSON column.  Its
// first line is called "address" rather than "street".
type BillingAddress struct {
    Address string `json:"address"`
    City    string `json:"city"`
    State   string `json:"state"`
    Zip     string `json:"zip"`
}

func (a BillingAddress) Value() (driver.Value, error) { return json.Marshal(a) }
func (a *BillingAddress) Scan(src any) error         { return scanJSON(src, a) }

// EmergencyContact is the dj_profiles.emergency_contacts JSON column.
type EmergencyContact struct {
    Name  string `json:"name"`
    Phone string `json:"phone"`
}

func (e EmergencyContact) Value() (driver.Value, error) { return json.Marshal(e) }
func (e *EmergencyContact) Scan(src any) error         { return scanJSON(src, e) }

func scanJSON(src any, dst any) error {
    switch v := src.(type) {
    case nil:
        return nil
    case []byte:
        return json.Unmarshal(v, dst)
    case string:
        return json.Unmarshal([]byte(v), dst)
    }
    return errors.New("model: unsupported JSON column type")
}
