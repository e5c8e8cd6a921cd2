// Package testutil provides in-memory stand-ins for the store, the payment
// gateway and the image bucket so handlers can be exercised without MongoDB
// or network access.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/princinho/resalebackend/database"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemStore keeps every collection in memory. Setting an Err field makes the
// matching write fail with that error.
type MemStore struct {
	mu sync.Mutex

	Users      []models.User
	Brands     []models.Brand
	Phones     []models.Phone
	Bookings   []models.Booking
	Payments   []models.Payment
	Advertised []models.AdvertisedItem

	PaymentInsertErr error
	FindErr          error
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Store() *database.Store {
	return &database.Store{
		Users:      memUsers{m},
		Brands:     memBrands{m},
		Phones:     memPhones{m},
		Bookings:   memBookings{m},
		Payments:   memPayments{m},
		Advertised: memAdvertised{m},
	}
}

func window[T any](items []T, page utils.Page) []T {
	if page.Limit <= 0 {
		return items
	}
	if page.Skip >= int64(len(items)) {
		return []T{}
	}
	end := page.Skip + page.Limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[page.Skip:end]
}

func notFound(what string) error { return fmt.Errorf("%s: %w", what, utils.ErrNotFound) }

type memUsers struct{ m *MemStore }

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.FindErr != nil {
		return nil, r.m.FindErr
	}
	for i := range r.m.Users {
		if r.m.Users[i].Email == email {
			u := r.m.Users[i]
			return &u, nil
		}
	}
	return nil, notFound("user")
}

func (r memUsers) InsertIfAbsent(_ context.Context, user *models.User) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.Users {
		if u.Email == user.Email {
			return false, nil
		}
	}
	user.ID = bson.NewObjectID()
	r.m.Users = append(r.m.Users, *user)
	return true, nil
}

type memBrands struct{ m *MemStore }

func (r memBrands) List(_ context.Context, page utils.Page) ([]models.Brand, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := append([]models.Brand{}, r.m.Brands...)
	return window(out, page), nil
}

func (r memBrands) FindByID(_ context.Context, id bson.ObjectID) (*models.Brand, error) {
	return r.find(func(b models.Brand) bool { return b.ID == id })
}

func (r memBrands) FindBySlug(_ context.Context, slug string) (*models.Brand, error) {
	return r.find(func(b models.Brand) bool { return b.Slug == slug })
}

func (r memBrands) find(match func(models.Brand) bool) (*models.Brand, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.Brands {
		if match(b) {
			return &b, nil
		}
	}
	return nil, notFound("brand")
}

type memPhones struct{ m *MemStore }

func (r memPhones) Insert(_ context.Context, phone *models.Phone) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	phone.ID = bson.NewObjectID()
	r.m.Phones = append(r.m.Phones, *phone)
	return nil
}

func (r memPhones) FindByID(_ context.Context, id bson.ObjectID) (*models.Phone, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.FindErr != nil {
		return nil, r.m.FindErr
	}
	for _, p := range r.m.Phones {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, notFound("phone")
}

func (r memPhones) ListAvailableByBrand(_ context.Context, brand string, page utils.Page) ([]models.Phone, error) {
	return r.list(func(p models.Phone) bool { return p.Brand == brand && p.SalesStatus != models.StatusSold }, page), nil
}

func (r memPhones) ListBySeller(_ context.Context, email string, page utils.Page) ([]models.Phone, error) {
	return r.list(func(p models.Phone) bool { return p.SellerEmail == email }, page), nil
}

func (r memPhones) list(match func(models.Phone) bool, page utils.Page) []models.Phone {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Phone{}
	for _, p := range r.m.Phones {
		if match(p) {
			out = append(out, p)
		}
	}
	return window(out, page)
}

func (r memPhones) MarkSold(_ context.Context, id bson.ObjectID) (models.UpdateResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.Phones {
		if r.m.Phones[i].ID == id {
			res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if r.m.Phones[i].SalesStatus != models.StatusSold {
				r.m.Phones[i].SalesStatus = models.StatusSold
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	r.m.Phones = append(r.m.Phones, models.Phone{ID: id, SalesStatus: models.StatusSold})
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r memPhones) AddImages(_ context.Context, id bson.ObjectID, images []models.PhoneImage) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.Phones {
		if r.m.Phones[i].ID == id {
			r.m.Phones[i].Images = append(r.m.Phones[i].Images, images...)
			return nil
		}
	}
	return notFound("phone")
}

func (r memPhones) Delete(_ context.Context, id bson.ObjectID) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.Phones {
		if r.m.Phones[i].ID == id {
			r.m.Phones = append(r.m.Phones[:i], r.m.Phones[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memBookings struct{ m *MemStore }

func (r memBookings) Insert(_ context.Context, booking *models.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	booking.ID = bson.NewObjectID()
	r.m.Bookings = append(r.m.Bookings, *booking)
	return nil
}

func (r memBookings) FindByID(_ context.Context, id bson.ObjectID) (*models.Booking, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.Bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, notFound("booking")
}

func (r memBookings) ListByUser(_ context.Context, email string, page utils.Page) ([]models.Booking, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range r.m.Bookings {
		if b.UserEmail == email {
			out = append(out, b)
		}
	}
	return window(out, page), nil
}

func (r memBookings) MarkPaid(_ context.Context, id bson.ObjectID, transactionID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.Bookings {
		if r.m.Bookings[i].ID == id {
			tx := transactionID
			r.m.Bookings[i].Paid = true
			r.m.Bookings[i].TransactionID = &tx
			return nil
		}
	}
	return notFound("booking")
}

type memPayments struct{ m *MemStore }

func (r memPayments) Insert(_ context.Context, payment *models.Payment) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.PaymentInsertErr != nil {
		return r.m.PaymentInsertErr
	}
	payment.ID = bson.NewObjectID()
	r.m.Payments = append(r.m.Payments, *payment)
	return nil
}

type memAdvertised struct{ m *MemStore }

func (r memAdvertised) Insert(_ context.Context, item *models.AdvertisedItem) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	item.ID = bson.NewObjectID()
	r.m.Advertised = append(r.m.Advertised, *item)
	return nil
}

func (r memAdvertised) ListUnsold(_ context.Context, page utils.Page) ([]models.AdvertisedItem, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.AdvertisedItem{}
	for _, a := range r.m.Advertised {
		if a.SalesStatus != models.StatusSold {
			out = append(out, a)
		}
	}
	return window(out, page), nil
}

func (r memAdvertised) MarkSoldByPhone(_ context.Context, phoneID string) (models.UpdateResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.Advertised {
		if r.m.Advertised[i].PhoneID == phoneID {
			res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if r.m.Advertised[i].SalesStatus != models.StatusSold {
				r.m.Advertised[i].SalesStatus = models.StatusSold
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	id := bson.NewObjectID()
	r.m.Advertised = append(r.m.Advertised, models.AdvertisedItem{ID: id, PhoneID: phoneID, SalesStatus: models.StatusSold})
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r memAdvertised) DeleteByPhone(_ context.Context, phoneID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	kept := r.m.Advertised[:0]
	var deleted int64
	for _, a := range r.m.Advertised {
		if a.PhoneID == phoneID {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	r.m.Advertised = kept
	return deleted, nil
}

// Gateway records every intent request and answers with Secret or Err.
type Gateway struct {
	mu       sync.Mutex
	Secret   string
	Err      error
	Requests []IntentRequest
}

type IntentRequest struct {
	Amount   int64
	Currency string
}

func (g *Gateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Requests = append(g.Requests, IntentRequest{Amount: amount, Currency: currency})
	if g.Err != nil {
		return "", g.Err
	}
	return g.Secret, nil
}

// ImageBucket keeps uploaded objects in a map keyed by object name.
type ImageBucket struct {
	mu      sync.Mutex
	Objects map[string][]byte
	PutErr  error
}

func NewImageBucket() *ImageBucket { return &ImageBucket{Objects: map[string][]byte{}} }

func (b *ImageBucket) Put(_ context.Context, objectName, _ string, body io.Reader) (string, error) {
	if b.PutErr != nil {
		return "", b.PutErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Objects[objectName] = data
	return "https://images.test/" + objectName, nil
}

func (b *ImageBucket) Delete(_ context.Context, objectNames []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, name := range objectNames {
		delete(b.Objects, name)
	}
	return nil
}

func (b *ImageBucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Objects)
}
