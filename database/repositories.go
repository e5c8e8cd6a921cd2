package database

import (
	"context"

	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Lookups that find nothing return an error wrapping utils.ErrNotFound; driver
// failures wrap utils.ErrStore.

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// InsertIfAbsent reports created=false when the email is already known.
	InsertIfAbsent(ctx context.Context, user *models.User) (created bool, err error)
}

type BrandRepository interface {
	List(ctx context.Context, page utils.Page) ([]models.Brand, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*models.Brand, error)
}

type PhoneRepository interface {
	Insert(ctx context.Context, phone *models.Phone) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Phone, error)
	ListAvailableByBrand(ctx context.Context, brand string, page utils.Page) ([]models.Phone, error)
	ListBySeller(ctx context.Context, email string, page utils.Page) ([]models.Phone, error)
	MarkSold(ctx context.Context, id bson.ObjectID) (models.UpdateResult, error)
	AddImages(ctx context.Context, id bson.ObjectID, images []models.PhoneImage) error
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Booking, error)
	ListByUser(ctx context.Context, email string, page utils.Page) ([]models.Booking, error)
	MarkPaid(ctx context.Context, id bson.ObjectID, transactionID string) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
}

type AdvertisedItemRepository interface {
	Insert(ctx context.Context, item *models.AdvertisedItem) error
	ListUnsold(ctx context.Context, page utils.Page) ([]models.AdvertisedItem, error)
	MarkSoldByPhone(ctx context.Context, phoneID string) (models.UpdateResult, error)
	DeleteByPhone(ctx context.Context, phoneID string) (int64, error)
}

// Store groups one repository per collection. It is built once at start-up
// and handed to every handler and guard that needs it.
type Store struct {
	Users      UserRepository
	Brands     BrandRepository
	Phones     PhoneRepository
	Bookings   BookingRepository
	Payments   PaymentRepository
	Advertised AdvertisedItemRepository
}
