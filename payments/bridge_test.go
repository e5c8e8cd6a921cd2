package payments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/testutil"
	"github.com/princinho/resalebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{1.005, 101},
		{250, 25000},
		{0.01, 1},
	}
	for _, tt := range tests {
		got, err := MinorUnits(tt.price)
		if err != nil {
			t.Fatalf("MinorUnits(%v): %v", tt.price, err)
		}
		if got != tt.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}

	for _, bad := range []float64{0, -5, 0.001} {
		if _, err := MinorUnits(bad); !errors.Is(err, utils.ErrBadRequest) {
			t.Errorf("MinorUnits(%v) err = %v, want ErrBadRequest", bad, err)
		}
	}
}

func newBridge(mem *testutil.MemStore, gw *testutil.Gateway) *Bridge {
	store := mem.Store()
	return NewBridge(gw, store.Bookings, store.Payments, "usd")
}

func TestCreateIntent(t *testing.T) {
	gw := &testutil.Gateway{Secret: "pi_123_secret_abc"}
	b := newBridge(testutil.NewMemStore(), gw)

	secret, err := b.CreateIntent(context.Background(), 19.99)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Fatalf("secret = %q", secret)
	}
	if len(gw.Requests) != 1 || gw.Requests[0] != (testutil.IntentRequest{Amount: 1999, Currency: "usd"}) {
		t.Fatalf("requests = %+v", gw.Requests)
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gw := &testutil.Gateway{Err: fmt.Errorf("card declined: %w", utils.ErrPaymentGateway)}
	b := newBridge(testutil.NewMemStore(), gw)
	if _, err := b.CreateIntent(context.Background(), 10); !errors.Is(err, utils.ErrPaymentGateway) {
		t.Fatalf("err = %v, want ErrPaymentGateway", err)
	}
}

func TestCreateIntentRejectsNonPositive(t *testing.T) {
	gw := &testutil.Gateway{Secret: "s"}
	b := newBridge(testutil.NewMemStore(), gw)
	if _, err := b.CreateIntent(context.Background(), 0); !errors.Is(err, utils.ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
	if len(gw.Requests) != 0 {
		t.Fatal("gateway called for a zero price")
	}
}

func seedBooking(mem *testutil.MemStore) bson.ObjectID {
	id := bson.NewObjectID()
	mem.Bookings = append(mem.Bookings, models.Booking{ID: id, UserEmail: "a@x.com", PhoneID: "p1", ResalePrice: 100})
	return id
}

func TestConfirm(t *testing.T) {
	mem := testutil.NewMemStore()
	id := seedBooking(mem)
	b := newBridge(mem, &testutil.Gateway{})

	err := b.Confirm(context.Background(), Confirmation{BookingID: id.Hex(), TransactionID: "T1", UserEmail: "a@x.com"})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	booking := mem.Bookings[0]
	if !booking.Paid || booking.TransactionID == nil || *booking.TransactionID != "T1" {
		t.Fatalf("booking = %+v", booking)
	}
	if len(mem.Payments) != 1 || mem.Payments[0].BookingID != id.Hex() || mem.Payments[0].TransactionID != "T1" {
		t.Fatalf("payments = %+v", mem.Payments)
	}
}

func TestConfirmTwiceAppendsTwice(t *testing.T) {
	mem := testutil.NewMemStore()
	id := seedBooking(mem)
	b := newBridge(mem, &testutil.Gateway{})

	for _, tx := range []string{"T1", "T2"} {
		if err := b.Confirm(context.Background(), Confirmation{BookingID: id.Hex(), TransactionID: tx}); err != nil {
			t.Fatalf("Confirm %s: %v", tx, err)
		}
	}
	if len(mem.Payments) != 2 {
		t.Fatalf("payments = %d, want 2", len(mem.Payments))
	}
	if *mem.Bookings[0].TransactionID != "T2" {
		t.Fatalf("transactionId = %q, want last write", *mem.Bookings[0].TransactionID)
	}
}

func TestConfirmUnknownBooking(t *testing.T) {
	mem := testutil.NewMemStore()
	b := newBridge(mem, &testutil.Gateway{})

	err := b.Confirm(context.Background(), Confirmation{BookingID: bson.NewObjectID().Hex(), TransactionID: "T1"})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(mem.Payments) != 0 {
		t.Fatal("payment recorded for an unknown booking")
	}
}

func TestConfirmBadInput(t *testing.T) {
	b := newBridge(testutil.NewMemStore(), &testutil.Gateway{})
	for _, conf := range []Confirmation{
		{BookingID: "nope", TransactionID: "T1"},
		{BookingID: bson.NewObjectID().Hex()},
	} {
		if err := b.Confirm(context.Background(), conf); !errors.Is(err, utils.ErrBadRequest) {
			t.Errorf("Confirm(%+v) err = %v, want ErrBadRequest", conf, err)
		}
	}
}

func TestConfirmInsertFailureLeavesBookingPaid(t *testing.T) {
	mem := testutil.NewMemStore()
	id := seedBooking(mem)
	mem.PaymentInsertErr = utils.ErrStore
	b := newBridge(mem, &testutil.Gateway{})

	err := b.Confirm(context.Background(), Confirmation{BookingID: id.Hex(), TransactionID: "T1"})
	if !errors.Is(err, utils.ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}
	if !mem.Bookings[0].Paid {
		t.Fatal("booking should stay paid when the payment insert fails")
	}
}
