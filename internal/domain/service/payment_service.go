package service

import "context"

// PaymentService is the narrow surface of the payment gateway. The engine
// only ever reacts to the gateway's "payment confirmed" webhook signal; intent
// creation internals stay behind this interface.
type PaymentService interface {
	// CreatePaymentIntent registers a pending charge and returns the client
	// secret the mobile client completes the payment with.
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (clientSecret string, intentID string, err error)

	// ParsePaymentConfirmed verifies a webhook payload against its signature
	// header and, when it carries a confirmed payment, returns the job ID
	// from the intent's metadata. Irrelevant event types yield an empty jobID
	// with no error.
	ParsePaymentConfirmed(payload []byte, signatureHeader string) (jobID string, err error)
}
