package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile indicates a profile failed validation.
var ErrInvalidProfile = errors.New("invalid organization profile")

// OrganizationProfile describes the organization taking the assessment.
// It is set once at the start of a session and never mutated until reset.
type OrganizationProfile struct {
	Industry      Industry    `json:"industry"`
	CompanySize   CompanySize `json:"companySize"`
	EmployeeCount int         `json:"employeeCount,omitempty"`
	AnnualRevenue float64     `json:"annualRevenue,omitempty"`
	Region        string      `json:"region,omitempty"`
}

// Validate checks that required enum fields are members of their closed sets
// and optional numeric fields are positive when present.
func (p OrganizationProfile) Validate() error {
	if p.Industry == "" {
		return fmt.Errorf("%w: industry is required", ErrInvalidProfile)
	}
	if !ValidIndustries[p.Industry] {
		return fmt.Errorf("%w: unknown industry %q", ErrInvalidProfile, p.Industry)
	}
	if p.CompanySize == "" {
		return fmt.Errorf("%w: company size is required", ErrInvalidProfile)
	}
	if !ValidCompanySizes[p.CompanySize] {
		return fmt.Errorf("%w: unknown company size %q", ErrInvalidProfile, p.CompanySize)
	}
	if p.EmployeeCount < 0 {
		return fmt.Errorf("%w: employee count must be positive", ErrInvalidProfile)
	}
	if p.AnnualRevenue < 0 {
		return fmt.Errorf("%w: annual revenue must be positive", ErrInvalidProfile)
	}
	return nil
}
