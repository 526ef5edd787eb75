package lease

import (
	"fmt"
	"strings"
)

const draftPromptTemplate = `You are a legal document assistant for a real estate platform. Draft a complete residential lease agreement from the details below.

LEASE DETAILS:
%s

REQUIREMENTS:
- Use numbered clauses with clear section headings
- Cover: parties and premises, lease term, rent and payment, security deposit, utilities and maintenance, property use and policies
- Include a renewal and termination section
- Include a dispute resolution section
- End with signature lines for landlord and tenant with date fields
- Use formal but plain legal language
- Do not invent monetary amounts or dates beyond those provided

Return only the lease text, with sections separated by blank lines.`

// extractionSentinel is the fixed response the extraction prompt must return
// when the conversation does not contain enough lease information.
const extractionSentinel = "NOT_ENOUGH_INFO"

const extractionPromptTemplate = `You are extracting lease agreement details from a conversation on a real estate platform.

CONVERSATION:
%s

Extract every lease detail mentioned. Respond with exactly one of:
1. A strict JSON object with any of these keys (omit keys you cannot fill):
   property_address, property_type, landlord_name, landlord_email, landlord_phone,
   tenant_name, tenant_email, tenant_phone, start_date, end_date, monthly_rent,
   security_deposit, payment_schedule, payment_method, renewal_option, pets_allowed,
   smoking_allowed, utilities_included, furnished, additional_terms
2. The exact text %s if the conversation contains no lease details at all.

Do not include commentary, markdown, or code fences.`

// renderDraftFields formats the lease details as labeled lines for the
// drafting prompt, omitting empty fields.
func renderDraftFields(d Details) string {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}

	add("Property Address", d.PropertyAddress)
	add("Property Type", d.PropertyType)
	add("Landlord", d.LandlordName)
	add("Landlord Email", d.LandlordEmail)
	add("Landlord Phone", d.LandlordPhone)
	add("Tenant", d.TenantName)
	add("Tenant Email", d.TenantEmail)
	add("Tenant Phone", d.TenantPhone)
	add("Lease Start Date", d.StartDate)
	add("Lease End Date", d.EndDate)
	add("Monthly Rent", d.MonthlyRent)
	add("Security Deposit", d.SecurityDeposit)
	add("Payment Schedule", d.PaymentSchedule)
	add("Payment Method", d.PaymentMethod)
	add("Renewal Option", d.RenewalOption)
	add("Pets Allowed", d.PetsAllowed)
	add("Smoking Allowed", d.SmokingAllowed)
	add("Utilities Included", d.UtilitiesIncluded)
	add("Furnished", d.Furnished)
	add("Additional Terms", d.AdditionalTerms)

	return strings.Join(lines, "\n")
}
