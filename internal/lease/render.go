package lease

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

// headingPattern matches section-style lines in drafted lease text:
// numbered clauses and the section keywords the drafting prompt requires.
var headingPattern = regexp.MustCompile(`(?i)^(\d+\.\s*)?(section|article|clause|parties|premises|term|rent|payment|deposit|security|utilities|maintenance|policies|renewal|termination|dispute|governing|signatures?)\b`)

// isHeading classifies a text block as a heading: single line that either
// ends with a colon or matches a section-keyword pattern.
func isHeading(block string) bool {
	if strings.Contains(block, "\n") {
		return false
	}
	block = strings.TrimSpace(block)
	if strings.HasSuffix(block, ":") {
		return true
	}
	return len(block) < 90 && headingPattern.MatchString(block)
}

// Render lays out the drafted lease text into a paginated PDF: title, a
// header table of the structured fields, the drafted text split at blank
// lines with each block set as heading or body, and a signature block.
func Render(d Details, draftedText string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Residential Lease Agreement", false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "RESIDENTIAL LEASE AGREEMENT", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Header table of structured fields.
	renderHeaderTable(pdf, d)
	pdf.Ln(6)

	// Drafted text: blank-line separated blocks, heading or body.
	for _, block := range strings.Split(draftedText, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if isHeading(block) {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, block, "", "L", false)
			pdf.Ln(1)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, block, "", "L", false)
			pdf.Ln(3)
		}
	}

	renderSignatureBlock(pdf, d)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeaderTable(pdf *fpdf.Fpdf, d Details) {
	rows := [][2]string{
		{"Property", d.PropertyAddress},
		{"Landlord", d.LandlordName},
		{"Tenant", d.TenantName},
		{"Lease Term", fmt.Sprintf("%s to %s", d.StartDate, d.EndDate)},
		{"Monthly Rent", d.MonthlyRent},
		{"Security Deposit", d.SecurityDeposit},
	}
	if d.PaymentSchedule != "" {
		rows = append(rows, [2]string{"Payment Schedule", d.PaymentSchedule})
	}
	if d.PaymentMethod != "" {
		rows = append(rows, [2]string{"Payment Method", d.PaymentMethod})
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, row[1], "1", 1, "L", false, 0, "")
	}
}

func renderSignatureBlock(pdf *fpdf.Fpdf, d Details) {
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "SIGNATURES", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, party := range []struct{ role, name string }{
		{"Landlord", d.LandlordName},
		{"Tenant", d.TenantName},
	} {
		pdf.CellFormat(90, 6, "_________________________", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Date: ____________", "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", party.role, party.name), "", 1, "L", false, 0, "")
		pdf.Ln(8)
	}
}
