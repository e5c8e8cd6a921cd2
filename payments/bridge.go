package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/princinho/resalebackend/database"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a decimal currency amount to whole cents, rounding
// half away from zero so 19.99 becomes 1999.
func MinorUnits(price float64) (int64, error) {
	amount := decimal.NewFromFloat(price).Mul(hundred).Round(0)
	if !amount.IsPositive() {
		return 0, fmt.Errorf("price must be positive, got %v: %w", price, utils.ErrBadRequest)
	}
	return amount.IntPart(), nil
}

type Bridge struct {
	gateway  Gateway
	bookings database.BookingRepository
	payments database.PaymentRepository
	currency string
	now      func() time.Time
}

func NewBridge(gateway Gateway, bookings database.BookingRepository, payments database.PaymentRepository, currency string) *Bridge {
	return &Bridge{
		gateway:  gateway,
		bookings: bookings,
		payments: payments,
		currency: currency,
		now:      time.Now,
	}
}

// CreateIntent asks the gateway for an intent covering price and returns the
// client secret unchanged.
func (b *Bridge) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return "", err
	}
	return b.gateway.CreatePaymentIntent(ctx, amount, b.currency)
}

type Confirmation struct {
	BookingID     string
	TransactionID string
	UserEmail     string
	PhoneID       string
	ResalePrice   float64
}

// Confirm marks the booking paid and then appends a payment record. The two
// writes are independent: a failed insert leaves the booking marked paid, and
// repeated confirmations append repeated records.
func (b *Bridge) Confirm(ctx context.Context, conf Confirmation) error {
	id, err := utils.ParseObjectID(conf.BookingID)
	if err != nil {
		return err
	}
	if conf.TransactionID == "" {
		return fmt.Errorf("missing transaction id: %w", utils.ErrBadRequest)
	}

	if err := b.bookings.MarkPaid(ctx, id, conf.TransactionID); err != nil {
		return err
	}

	payment := &models.Payment{
		BookingID:     conf.BookingID,
		TransactionID: conf.TransactionID,
		UserEmail:     conf.UserEmail,
		PhoneID:       conf.PhoneID,
		ResalePrice:   conf.ResalePrice,
		CreatedAt:     b.now().UTC(),
	}
	if err := b.payments.Insert(ctx, payment); err != nil {
		return fmt.Errorf("booking %s marked paid but payment not recorded: %w", conf.BookingID, err)
	}
	return nil
}
