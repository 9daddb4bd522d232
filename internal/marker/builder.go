// Package marker composes listings and their resolved locations into
// renderable map pins.
package marker

import (
	"strings"

	"github.com/leegyver/land-sub002/internal/models"
	"github.com/leegyver/land-sub002/internal/won"
)

const titleMaxRunes = 20

// ApproximateNotice is appended to popups whose pin is not an exact stored
// coordinate.
const ApproximateNotice = "지역 기준 대략적인 위치입니다"

// priceRows fixes the display order of the popup's price block.
var priceRows = []struct {
	label string
	value func(*models.Listing) models.Amount
}{
	{"매매가", func(l *models.Listing) models.Amount { return l.Price }},
	{"전세금", func(l *models.Listing) models.Amount { return l.Deposit }},
	{"보증금", func(l *models.Listing) models.Amount { return l.DepositAmount }},
	{"월세", func(l *models.Listing) models.Amount { return l.MonthlyRent }},
	{"관리비", func(l *models.Listing) models.Amount { return l.MaintenanceFee }},
}

// Build produces the marker view for one listing at its resolved location.
// Pure: no network, no storage, no shared state.
func Build(l *models.Listing, loc models.ResolvedLocation) models.MarkerView {
	lines := make([]string, 0, len(priceRows))
	for _, row := range priceRows {
		if text := won.Format(row.value(l)); text != "" {
			lines = append(lines, row.label+" "+text)
		}
	}

	m := models.MarkerView{
		ListingID:   l.ID,
		Title:       truncate(l.Title, titleMaxRunes),
		Coordinate:  loc.Coordinate,
		Precision:   loc.Precision,
		Approximate: loc.Precision != models.PrecisionExact,
		PriceLines:  lines,
	}

	popup := append([]string{m.Title}, lines...)
	if m.Approximate {
		popup = append(popup, ApproximateNotice)
	}
	m.Popup = strings.Join(popup, "\n")
	return m
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
