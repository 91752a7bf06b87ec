package domain

import (
	"errors"
	"fmt"
)

// Currency a currency code
type Currency string

// symbols for currencies rendered in reports
var symbols = map[Currency]string{
	"USD": "$",
	"INR": "₹",
}

// Symbol returns the display symbol for c, falling back to the code itself.
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate an exchange rate, units of the target currency per unit of the source currency
type Rate float64

// Quote a rate together with the currencies it converts between
type Quote struct {
	From Currency
	To   Currency
	Rate Rate
}

// Exchanged the result of one conversion. Original is the amount before conversion.
type Exchanged struct {
	Rate     Rate
	Original Amount
	Amount   Amount
}

// Item a named price in the source currency
type Item struct {
	Name  string
	Price Amount
}

// PriceTable ordered items. Order is significant, reports follow it.
type PriceTable []Item

// Validate checks every item has a name and that names are unique.
func (t PriceTable) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, item := range t {
		if item.Name == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyName)
		}
		if _, ok := seen[item.Name]; ok {
			return fmt.Errorf("item %d [%v]: %w", i, item.Name, ErrDuplicateName)
		}
		seen[item.Name] = struct{}{}
	}
	return nil
}

var (
	ErrEmptyName     = errors.New("empty item name")
	ErrDuplicateName = errors.New("duplicate item name")
)
