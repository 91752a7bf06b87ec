package rates

import (
	"github.com/go-kit/log"
	"time"
	"watch-price-converter/domain"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Quote() (quote domain.Quote) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "quote",
			"from", quote.From,
			"to", quote.To,
			"rate", quote.Rate,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Quote()
}
