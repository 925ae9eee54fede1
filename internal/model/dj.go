package model

import "time"

// EmploymentStatus mirrors the employment_status enum.
type EmploymentStatus string

const (
    EmploymentEmployee   EmploymentStatus = "employee"
    EmploymentContractor EmploymentStatus = "contractor"
    Employment1099       EmploymentStatus = "1099"
)

// Valid reports whether s is one of the employment_status values.
func (s EmploymentStatus) Valid() bool {
    return s == EmploymentEmployee || s == EmploymentContractor || s == Employment1099
}

// DJProfile represents a row in `dj_profiles`.  The ID equals the DJ's
// user ID.  The SSN is only ever held sealed and never serialized.
//
// Fields:
//  ID               – dj_profiles.id (= users.id).
//  FullName         – display name.
//  DOB              – date of birth, "YYYY-MM-DD".
//  SSNSealed        – secretbox-sealed SSN (dj_profiles.ssn_encrypted).
//  Phone, Email     – contact details.
//  Address          – JSON address.
//  EmploymentStatus – employee, contractor or 1099.
//  EmergencyContact – JSON emergency contact (nullable).
//  DocumentCount    – number of dj_documents rows, filled by list queries.
type DJProfile struct {
    ID               string            `json:"id"`
    FullName         string            `json:"full_name"`
    DOB              string            `json:"dob"`
    SSNSealed        string            `json:"-"`
    Phone            string            `json:"phone"`
    Email            string            `json:"email"`
    Address          Address           `json:"address"`
    EmploymentStatus EmploymentStatus  `json:"employment_status"`
    EmergencyContact *EmergencyContact `json:"emergency_contacts"`
    DocumentCount    int               `json:"document_count"`
    CreatedAt        time.Time         `json:"created_at"`
    UpdatedAt        time.Time         `json:"updated_at"`
}
