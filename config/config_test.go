package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"business": map[string]any{
			"taxRate": 0.08,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BUSINESS_TAXRATE", want: "business.taxRate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestWithBusinessDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   *BusinessConfig
		want BusinessConfig
	}{
		{
			name: "nil config gets all defaults",
			in:   nil,
			want: BusinessConfig{
				TaxRate:         DefaultTaxRate,
				DepositFraction: DefaultDepositFraction,
				QuoteValidity:   DefaultQuoteValidity,
				AverageSpeedKMH: DefaultAverageSpeedKMH,
			},
		},
		{
			name: "explicit values are kept",
			in: &BusinessConfig{
				TaxRate:         0.05,
				DepositFraction: 0.5,
				QuoteValidity:   time.Hour,
				AverageSpeedKMH: 50,
			},
			want: BusinessConfig{
				TaxRate:         0.05,
				DepositFraction: 0.5,
				QuoteValidity:   time.Hour,
				AverageSpeedKMH: 50,
			},
		},
		{
			name: "zero and negative values fall back",
			in: &BusinessConfig{
				TaxRate:       -1,
				QuoteValidity: time.Hour,
			},
			want: BusinessConfig{
				TaxRate:         DefaultTaxRate,
				DepositFraction: DefaultDepositFraction,
				QuoteValidity:   time.Hour,
				AverageSpeedKMH: DefaultAverageSpeedKMH,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withBusinessDefaults(tt.in)
			if *got != tt.want {
				t.Fatalf("withBusinessDefaults() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
