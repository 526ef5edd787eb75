package lease

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/llm"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

// scriptedProvider returns queued responses in order and records prompts.
type scriptedProvider struct {
	responses []string
	prompts   []string
	err       error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if len(req.Messages) > 0 {
		p.prompts = append(p.prompts, req.Messages[len(req.Messages)-1].Content)
	}
	if p.err != nil {
		return nil, p.err
	}
	content := ""
	if len(p.responses) > 0 {
		content = p.responses[0]
		p.responses = p.responses[1:]
	}
	return &llm.CompletionResponse{Content: content}, nil
}

func completeDetails() Details {
	return Details{
		PropertyAddress: "12 Shore Road, Karachi",
		LandlordName:    "Hassan Raza",
		TenantName:      "Sara Khan",
		StartDate:       "2026-09-01",
		EndDate:         "2027-08-31",
		MonthlyRent:     "85000 PKR",
		SecurityDeposit: "170000 PKR",
		PaymentSchedule: "Monthly",
		PetsAllowed:     "no",
	}
}

const sampleDraft = `1. PARTIES AND PREMISES

This agreement is between Hassan Raza (landlord) and Sara Khan (tenant) for the property at 12 Shore Road.

2. RENT AND PAYMENT

The monthly rent is 85000 PKR, due on the first of each month.

RENEWAL AND TERMINATION:

Either party may terminate with sixty days written notice.

Dispute Resolution

Disputes shall first be submitted to mediation.`

// --- Validation and merge ---

func TestValidateRequiresSevenFields(t *testing.T) {
	d := completeDetails()
	if err := d.Validate(); err != nil {
		t.Fatalf("complete details should validate: %v", err)
	}

	d.MonthlyRent = ""
	d.TenantName = " "
	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "monthly rent") || !strings.Contains(err.Error(), "tenant name") {
		t.Errorf("expected missing field labels in error, got %v", err)
	}
}

func TestMergeAccumulatesAndOverrides(t *testing.T) {
	first := Details{LandlordName: "Hassan Raza", MonthlyRent: "80000"}
	second := Details{TenantName: "Sara Khan", MonthlyRent: "85000"}

	merged := first.Merge(second)
	if merged.LandlordName != "Hassan Raza" {
		t.Errorf("expected earlier field kept, got %q", merged.LandlordName)
	}
	if merged.TenantName != "Sara Khan" {
		t.Errorf("expected new field added, got %q", merged.TenantName)
	}
	if merged.MonthlyRent != "85000" {
		t.Errorf("expected newer value to win, got %q", merged.MonthlyRent)
	}
	// Merge is pure.
	if first.TenantName != "" || second.LandlordName != "" {
		t.Error("Merge mutated its inputs")
	}
}

func TestMissingListsRequiredLabelsInOrder(t *testing.T) {
	d := Details{LandlordName: "X", TenantName: "Y"}
	missing := d.Missing()
	want := []string{"property address", "lease start date", "lease end date", "monthly rent", "security deposit"}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing, got %v", len(want), missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

// --- Authorization ---

func TestAuthorizeRoleAllowList(t *testing.T) {
	allowed := config.DefaultLeaseRoles

	for _, role := range []string{"landlord", "Agent", "ADMIN"} {
		if err := Authorize(role, allowed); err != nil {
			t.Errorf("expected role %q to be allowed: %v", role, err)
		}
	}
	for _, role := range []string{"tenant", "visitor", ""} {
		if err := Authorize(role, allowed); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("expected ErrAccessDenied for role %q, got %v", role, err)
		}
	}
}

func TestGenerateDeniesTenantRegardlessOfCompleteness(t *testing.T) {
	provider := &scriptedProvider{responses: []string{sampleDraft}}
	g := NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles)

	_, err := g.Generate(context.Background(), completeDetails(), "tenant")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if len(provider.prompts) != 0 {
		t.Error("expected no model call for denied caller")
	}
}

// --- Generation ---

func TestGenerateProducesPDFWithIDFilename(t *testing.T) {
	provider := &scriptedProvider{responses: []string{sampleDraft}}
	g := NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles)

	doc, err := g.Generate(context.Background(), completeDetails(), "landlord")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if doc.ID == "" {
		t.Error("expected non-empty document id")
	}
	if !strings.Contains(doc.Filename, doc.ID) || !strings.HasSuffix(doc.Filename, ".pdf") {
		t.Errorf("expected filename containing id, got %q", doc.Filename)
	}
	if !bytes.HasPrefix(doc.PDF, []byte("%PDF")) {
		t.Errorf("expected PDF signature, got %q", doc.PDF[:min(8, len(doc.PDF))])
	}

	// Drafting prompt carries the structured fields.
	if !strings.Contains(provider.prompts[0], "12 Shore Road, Karachi") {
		t.Error("expected property address in drafting prompt")
	}
	if !strings.Contains(provider.prompts[0], "dispute resolution") {
		t.Error("expected dispute resolution instruction in drafting prompt")
	}
}

func TestGenerateValidationFailure(t *testing.T) {
	g := NewGenerator(&scriptedProvider{}, "gpt-4o-mini", config.DefaultLeaseRoles)

	d := completeDetails()
	d.PropertyAddress = ""
	_, err := g.Generate(context.Background(), d, "landlord")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// --- Heading classification ---

func TestIsHeading(t *testing.T) {
	tests := []struct {
		block string
		want  bool
	}{
		{"1. PARTIES AND PREMISES", true},
		{"RENEWAL AND TERMINATION:", true},
		{"Dispute Resolution", true},
		{"Security Deposit", true},
		{"The monthly rent is 85000 PKR, due on the first of each month.", false},
		{"This agreement is between two parties.\nIt spans two lines.", false},
	}
	for _, tt := range tests {
		if got := isHeading(tt.block); got != tt.want {
			t.Errorf("isHeading(%q) = %v, want %v", tt.block, got, tt.want)
		}
	}
}

func TestRenderPaginatesLongDrafts(t *testing.T) {
	long := strings.Repeat("This clause continues with further obligations of the tenant. ", 400)
	pdf, err := Render(completeDetails(), "1. TERM\n\n"+long)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("expected PDF signature")
	}
	// A draft this size cannot fit a single A4 page.
	m := regexp.MustCompile(`/Count (\d+)`).FindSubmatch(pdf)
	if m == nil {
		t.Fatal("no page tree found in output")
	}
	if pages, _ := strconv.Atoi(string(m[1])); pages < 2 {
		t.Errorf("expected multi-page output, got %d page(s)", pages)
	}
}

// --- Extraction and flow ---

func TestExtractParsesStrictJSON(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"property_address": "12 Shore Road", "monthly_rent": "85000", "tenant_name": "Sara Khan"}`,
	}}
	g := NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles)

	d, err := g.Extract(context.Background(), []rag.Message{
		{Role: rag.RoleUser, Content: "Lease for 12 Shore Road, rent 85000, tenant Sara Khan"},
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if d.PropertyAddress != "12 Shore Road" || d.MonthlyRent != "85000" || d.TenantName != "Sara Khan" {
		t.Errorf("unexpected extraction: %+v", d)
	}
}

func TestExtractSentinelAndMalformedFallBackToEmpty(t *testing.T) {
	for _, resp := range []string{"NOT_ENOUGH_INFO", "I think the rent might be 85000?", ""} {
		provider := &scriptedProvider{responses: []string{resp}}
		g := NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles)

		d, err := g.Extract(context.Background(), []rag.Message{{Role: rag.RoleUser, Content: "hi"}})
		if err != nil {
			t.Fatalf("Extract(%q): %v", resp, err)
		}
		if d != (Details{}) {
			t.Errorf("expected empty details for %q, got %+v", resp, d)
		}
	}
}

func TestFlowDeniesUnauthorizedRoleGracefully(t *testing.T) {
	provider := &scriptedProvider{}
	flow := NewFlow(NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles))

	answer, err := flow.Respond(context.Background(), "generate a lease", nil, rag.User{Role: "tenant"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer, "landlords") {
		t.Errorf("expected polite denial, got %q", answer)
	}
	if len(provider.prompts) != 0 {
		t.Error("expected no extraction call for denied caller")
	}
}

func TestFlowAsksForMissingFields(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"landlord_name": "Hassan Raza", "tenant_name": "Sara Khan"}`,
	}}
	flow := NewFlow(NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles))

	answer, err := flow.Respond(context.Background(), "draft a lease between Hassan and Sara",
		nil, rag.User{Role: "landlord"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer, "property address") {
		t.Errorf("expected prompt for first missing field, got %q", answer)
	}
}

func TestFlowConfirmsWhenComplete(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"property_address": "12 Shore Road", "landlord_name": "Hassan Raza", "tenant_name": "Sara Khan",
		  "start_date": "2026-09-01", "end_date": "2027-08-31", "monthly_rent": "85000", "security_deposit": "170000"}`,
	}}
	flow := NewFlow(NewGenerator(provider, "gpt-4o-mini", config.DefaultLeaseRoles))

	answer, err := flow.Respond(context.Background(), "that's everything", nil, rag.User{Role: "agent"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer, "Generate Lease") {
		t.Errorf("expected completion confirmation, got %q", answer)
	}
}
