package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// ListingDocument converts a property listing into the indexed document used
// for retrieval. The text block keeps a fixed field order (title,
// description, price, amenities, address, details); empty fields are omitted
// entirely so no placeholder literals leak into the embedding text.
func ListingDocument(l listings.Listing) vectordb.Document {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Title", l.Title)
	add("Description", l.Description)
	add("Price", formatPrice(l.Price))
	add("Amenities", strings.Join(l.Amenities, ", "))
	add("Address", formatAddress(l.Address))
	add("Details", formatDetails(l.Details))

	return vectordb.Document{
		ID:      "listing:" + l.Hex(),
		Content: strings.Join(lines, "\n"),
		Metadata: vectordb.Metadata{
			ListingID: l.Hex(),
			Price:     formatPrice(l.Price),
			Category:  l.Category,
			Status:    l.Status,
			Source:    vectordb.SourcePropertyListing,
		},
	}
}

func formatPrice(price float64) string {
	if price == 0 {
		return ""
	}
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func formatAddress(a listings.Address) string {
	parts := []string{a.Street, a.City, a.State, a.Country}
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func formatDetails(d listings.Details) string {
	var out []string
	if d.Bedrooms > 0 {
		out = append(out, fmt.Sprintf("%d Bedrooms", d.Bedrooms))
	}
	if d.Bathrooms > 0 {
		out = append(out, fmt.Sprintf("%d Bathrooms", d.Bathrooms))
	}
	if d.Area > 0 {
		out = append(out, fmt.Sprintf("%s sqft", strconv.FormatFloat(d.Area, 'f', -1, 64)))
	}
	if d.Parking > 0 {
		out = append(out, fmt.Sprintf("%d Parking", d.Parking))
	}
	return strings.Join(out, ", ")
}
