package report

import (
	"bufio"
	"fmt"
	"io"
	"watch-price-converter/domain"
	"watch-price-converter/exchange"
)

// Reporter renders a price table converted by an exchange.Service
type Reporter struct {
	// title leads the header line
	title string

	// service converts each price
	service exchange.Service
}

// New constructs a valid Reporter
func New(title string, s exchange.Service) *Reporter {
	return &Reporter{
		title:   title,
		service: s,
	}
}

// Write emits a header line followed by one line per item, in table order.
// Amounts are always rendered with two decimals.
// An invalid table is rejected before anything is written.
func (r *Reporter) Write(w io.Writer, table domain.PriceTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	quote := r.service.Quote()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s (%v to %v Conversion):\n", r.title, quote.From, quote.To)
	for _, item := range table {
		ex := r.service.Convert(item.Price)
		fmt.Fprintf(bw, "%s: %s%.2f %v = %s%.2f %v\n",
			item.Name,
			quote.From.Symbol(), float64(ex.Original), quote.From,
			quote.To.Symbol(), float64(ex.Amount), quote.To,
		)
	}

	// bufio errors are sticky, so the flush reports any failed write above
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
