package response

import (
	"time"
)

// MemberRow is one row of the member listing: member fields joined with the
// login username.
type MemberRow struct {
	ID               uint       `json:"id"`
	CredentialID     uint       `json:"credential_id"`
	Username         string     `json:"username"`
	NationalID       string     `json:"national_id"`
	FullName         string     `json:"full_name"`
	BirthDate        *time.Time `json:"birth_date"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	EnrollmentDate   *time.Time `json:"enrollment_date"`
	TerminationDate  *time.Time `json:"termination_date"`
	Status           int        `json:"status"`
	Category         int        `json:"category"`
	BillingCycle     int        `json:"billing_cycle"`
}
