package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote_EffectiveStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		status     QuoteStatus
		validUntil time.Time
		want       QuoteStatus
	}{
		{"pending within window", QuoteStatusPending, now.Add(time.Hour), QuoteStatusPending},
		{"pending past window", QuoteStatusPending, now.Add(-time.Minute), QuoteStatusExpired},
		{"approved past window", QuoteStatusApproved, now.Add(-time.Minute), QuoteStatusExpired},
		{"accepted never expires", QuoteStatusAccepted, now.Add(-time.Hour), QuoteStatusAccepted},
		{"rejected never expires", QuoteStatusRejected, now.Add(-time.Hour), QuoteStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Quote{Status: tt.status, ValidUntil: tt.validUntil}
			assert.Equal(t, tt.want, q.EffectiveStatus(now))
		})
	}
}

func TestQuote_Acceptable(t *testing.T) {
	now := time.Now()

	valid := &Quote{Status: QuoteStatusPending, ValidUntil: now.Add(time.Hour)}
	assert.True(t, valid.Acceptable(now))

	approved := &Quote{Status: QuoteStatusApproved, ValidUntil: now.Add(time.Hour)}
	assert.True(t, approved.Acceptable(now))

	expired := &Quote{Status: QuoteStatusPending, ValidUntil: now.Add(-time.Second)}
	assert.False(t, expired.Acceptable(now))

	rejected := &Quote{Status: QuoteStatusRejected, ValidUntil: now.Add(time.Hour)}
	assert.False(t, rejected.Acceptable(now))
}
