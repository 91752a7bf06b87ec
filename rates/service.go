package rates

import (
	"fmt"
	"watch-price-converter/domain"
)

// USDToINR approximate number of rupees per US dollar.
// This is not a real-time rate, update it by hand when it drifts too far.
const USDToINR domain.Rate = 83.0

// Service provides the rate used for conversions
type Service interface {
	Quote() domain.Quote
}

// service a rate fixed at construction
type service struct {
	quote domain.Quote
}

// NewFixed constructs a Service that always quotes rate for from -> to.
func NewFixed(from domain.Currency, to domain.Currency, rate domain.Rate) (Service, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("fixed rate [%v -> %v]: rate must be positive, got %v", from, to, rate)
	}
	return &service{
		quote: domain.Quote{From: from, To: to, Rate: rate},
	}, nil
}

func (s *service) Quote() domain.Quote {
	return s.quote
}
