package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"os"
	"watch-price-converter/catalog"
	"watch-price-converter/exchange"
	"watch-price-converter/rates"
	"watch-price-converter/report"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run writes the watch price report to stdout and logs to stderr.
// Errors are logged before being returned.
func run(stdout io.Writer, stderr io.Writer) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	logger = level.NewFilter(logger, level.AllowInfo())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	rateService, err := rates.NewFixed("USD", "INR", rates.USDToINR)
	if err != nil {
		level.Error(logger).Log("msg", "bad rate", "err", err)
		return err
	}
	rateService = rates.NewLoggingService(level.Debug(log.With(logger, "component", "rates")), rateService)

	exchangeService := exchange.NewService(rateService)
	exchangeService = exchange.NewLoggingService(level.Debug(log.With(logger, "component", "exchange")), exchangeService)

	reporter := report.New("Watch Prices", exchangeService)
	if err := reporter.Write(stdout, catalog.Watches()); err != nil {
		level.Error(logger).Log("msg", "report failed", "err", err)
		return err
	}
	return nil
}
