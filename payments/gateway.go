// Package payments bridges bookings to the external payment processor: it
// opens payment intents and records confirmed payments.
package payments

import "context"

// Gateway creates payment intents with an external processor. amount is in
// minor units of currency.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
