package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a price-like listing field as the listing store delivers it. The
// admin UI historically saved these columns as either numbers or free text,
// so it accepts both JSON token kinds. An Amount participates in display only
// when it parses to a value greater than zero.
type Amount string

// UnmarshalJSON accepts both string and number tokens.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Value returns the numeric value in won and whether the amount is valid for
// display. Empty, non-numeric, zero and negative amounts are all invalid.
func (a Amount) Value() (int64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(a)), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int64(f), true
}

// Listing represents one property as served by the listing store. The map
// pipeline reads it as-is; District and Address are free text entered by
// hand and are not normalized.
type Listing struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	District       string   `json:"district"`
	Address        string   `json:"address"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Price          Amount   `json:"price,omitempty"`
	Deposit        Amount   `json:"deposit,omitempty"`
	DepositAmount  Amount   `json:"depositAmount,omitempty"`
	MonthlyRent    Amount   `json:"monthlyRent,omitempty"`
	MaintenanceFee Amount   `json:"maintenanceFee,omitempty"`
}

// HasCoordinate reports whether the listing carries a stored exact position.
func (l *Listing) HasCoordinate() bool {
	return l.Latitude != nil && l.Longitude != nil
}
