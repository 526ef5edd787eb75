package lease

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation wraps missing-field failures so handlers can map them to a
// client error.
var ErrValidation = errors.New("lease validation failed")

// ErrAccessDenied is returned when the caller's role is not in the lease
// generation allow-list.
var ErrAccessDenied = errors.New("access denied: role is not permitted to generate lease agreements")

// Details holds the structured fields of a lease agreement. String-typed
// throughout: values arrive either directly from API callers or extracted
// from free-form conversation, and the drafting model consumes them as text.
type Details struct {
	PropertyAddress string `json:"property_address"`
	PropertyType    string `json:"property_type,omitempty"`

	LandlordName  string `json:"landlord_name"`
	LandlordEmail string `json:"landlord_email,omitempty"`
	LandlordPhone string `json:"landlord_phone,omitempty"`

	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email,omitempty"`
	TenantPhone string `json:"tenant_phone,omitempty"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	MonthlyRent     string `json:"monthly_rent"`
	SecurityDeposit string `json:"security_deposit"`
	PaymentSchedule string `json:"payment_schedule,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`

	RenewalOption     string `json:"renewal_option,omitempty"`
	PetsAllowed       string `json:"pets_allowed,omitempty"`
	SmokingAllowed    string `json:"smoking_allowed,omitempty"`
	UtilitiesIncluded string `json:"utilities_included,omitempty"`
	Furnished         string `json:"furnished,omitempty"`
	AdditionalTerms   string `json:"additional_terms,omitempty"`
}

// requiredFields maps the seven required fields to accessors and the labels
// used in validation errors and slot-filling prompts.
var requiredFields = []struct {
	Label string
	Get   func(*Details) string
}{
	{"property address", func(d *Details) string { return d.PropertyAddress }},
	{"landlord name", func(d *Details) string { return d.LandlordName }},
	{"tenant name", func(d *Details) string { return d.TenantName }},
	{"lease start date", func(d *Details) string { return d.StartDate }},
	{"lease end date", func(d *Details) string { return d.EndDate }},
	{"monthly rent", func(d *Details) string { return d.MonthlyRent }},
	{"security deposit", func(d *Details) string { return d.SecurityDeposit }},
}

// Missing returns the labels of required fields that are still empty.
func (d *Details) Missing() []string {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.Get(d)) == "" {
			missing = append(missing, f.Label)
		}
	}
	return missing
}

// Validate checks that the seven required fields are present.
func (d *Details) Validate() error {
	if missing := d.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Merge returns a copy of d with empty fields filled from other, and
// non-empty fields in other overriding d. Pure: neither receiver nor
// argument is modified. Used to accumulate slot-filled fields across
// conversation turns, newest information winning.
func (d Details) Merge(other Details) Details {
	merged := d
	for _, pair := range []struct{ dst, src *string }{
		{&merged.PropertyAddress, &other.PropertyAddress},
		{&merged.PropertyType, &other.PropertyType},
		{&merged.LandlordName, &other.LandlordName},
		{&merged.LandlordEmail, &other.LandlordEmail},
		{&merged.LandlordPhone, &other.LandlordPhone},
		{&merged.TenantName, &other.TenantName},
		{&merged.TenantEmail, &other.TenantEmail},
		{&merged.TenantPhone, &other.TenantPhone},
		{&merged.StartDate, &other.StartDate},
		{&merged.EndDate, &other.EndDate},
		{&merged.MonthlyRent, &other.MonthlyRent},
		{&merged.SecurityDeposit, &other.SecurityDeposit},
		{&merged.PaymentSchedule, &other.PaymentSchedule},
		{&merged.PaymentMethod, &other.PaymentMethod},
		{&merged.RenewalOption, &other.RenewalOption},
		{&merged.PetsAllowed, &other.PetsAllowed},
		{&merged.SmokingAllowed, &other.SmokingAllowed},
		{&merged.UtilitiesIncluded, &other.UtilitiesIncluded},
		{&merged.Furnished, &other.Furnished},
		{&merged.AdditionalTerms, &other.AdditionalTerms},
	} {
		if strings.TrimSpace(*pair.src) != "" {
			*pair.dst = *pair.src
		}
	}
	return merged
}

// Authorize checks the caller's role against the allow-list. Matching is
// case-insensitive.
func Authorize(role string, allowedRoles []string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, allowed := range allowedRoles {
		if role == strings.ToLower(allowed) {
			return nil
		}
	}
	return ErrAccessDenied
}
