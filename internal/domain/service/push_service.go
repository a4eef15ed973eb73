// Package service defines interfaces for infrastructure collaborators consumed
// by the use case layer.
package service

import "context"

// PushService delivers out-of-band notifications to a device token. Delivery
// is best-effort; callers log failures and never roll back persisted state.
type PushService interface {
	// SendToToken sends one push notification to a single device token.
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) error
}
