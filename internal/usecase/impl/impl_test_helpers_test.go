package impl

import (
	"io"
	"log/slog"

	"wrench/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Business: &config.BusinessConfig{
			TaxRate:         config.DefaultTaxRate,
			DepositFraction: config.DefaultDepositFraction,
			QuoteValidity:   config.DefaultQuoteValidity,
			AverageSpeedKMH: config.DefaultAverageSpeedKMH,
		},
	}
}
