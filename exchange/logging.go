package exchange

import (
	"github.com/go-kit/log"
	"time"
	"watch-price-converter/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Quote() domain.Quote {
	return s.next.Quote()
}

func (s *loggingService) Convert(amount domain.Amount) (ex domain.Exchanged) {
	quote := s.next.Quote()
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"from", quote.From,
			"to", quote.To,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(amount)
}
