package exchange

import (
	"watch-price-converter/domain"
	"watch-price-converter/rates"
)

// Service interface for converting amounts with a single quoted rate
type Service interface {
	Quote() domain.Quote
	Convert(amount domain.Amount) domain.Exchanged
}

// service converts with whatever rate the rates.Service quotes
type service struct {
	rates rates.Service
}

// NewService constructs a valid Service
func NewService(r rates.Service) Service {
	return &service{
		rates: r,
	}
}

// Convert multiplies amount by rate. No validation and no rounding is applied,
// so negative amounts give negative results.
func Convert(amount domain.Amount, rate domain.Rate) domain.Amount {
	return domain.Amount(float64(amount) * float64(rate))
}

func (s *service) Quote() domain.Quote {
	return s.rates.Quote()
}

// Convert computes a conversion from the quote's source to target currency.
func (s *service) Convert(amount domain.Amount) domain.Exchanged {
	rate := s.rates.Quote().Rate
	return domain.Exchanged{
		Rate:     rate,
		Original: amount,
		Amount:   Convert(amount, rate),
	}
}
