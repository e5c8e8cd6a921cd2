package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:      &mongoUsers{col: db.Collection(UsersCollection)},
		Brands:     &mongoBrands{col: db.Collection(BrandsCollection)},
		Phones:     &mongoPhones{col: db.Collection(PhonesCollection)},
		Bookings:   &mongoBookings{col: db.Collection(BookingsCollection)},
		Payments:   &mongoPayments{col: db.Collection(PaymentsCollection)},
		Advertised: &mongoAdvertised{col: db.Collection(AdvertisedCollection)},
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, utils.ErrStore, err)
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter any, what string) (*T, error) {
	var out T
	if err := col.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", what, utils.ErrNotFound)
		}
		return nil, storeErr("find "+what, err)
	}
	return &out, nil
}

// findAll returns every document matching filter, windowed by page when it
// carries a limit. The result is never nil so it encodes as [].
func findAll[T any](ctx context.Context, col *mongo.Collection, filter any, page utils.Page) ([]T, error) {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetSkip(page.Skip).SetLimit(page.Limit)
	}
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("find "+col.Name(), err)
	}
	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, storeErr("decode "+col.Name(), err)
	}
	return items, nil
}

func markSold(ctx context.Context, col *mongo.Collection, filter bson.M) (models.UpdateResult, error) {
	res, err := col.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"salesStatus": models.StatusSold}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return models.UpdateResult{}, storeErr("mark sold in "+col.Name(), err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func availableByBrandFilter(brand string) bson.M {
	return bson.M{"brand": brand, "salesStatus": bson.M{"$ne": models.StatusSold}}
}

func unsoldFilter() bson.M {
	return bson.M{"salesStatus": bson.M{"$ne": models.StatusSold}}
}

type mongoUsers struct{ col *mongo.Collection }

func (r *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"email": email}, "user")
}

func (r *mongoUsers) InsertIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return false, nil
	} else if !errors.Is(err, utils.ErrNotFound) {
		return false, err
	}

	user.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		// lost a race against a concurrent signup for the same email
		if utils.IsDuplicateKey(err) {
			return false, nil
		}
		return false, storeErr("insert user", err)
	}
	return true, nil
}

type mongoBrands struct{ col *mongo.Collection }

func (r *mongoBrands) List(ctx context.Context, page utils.Page) ([]models.Brand, error) {
	return findAll[models.Brand](ctx, r.col, bson.M{}, page)
}

func (r *mongoBrands) FindByID(ctx context.Context, id bson.ObjectID) (*models.Brand, error) {
	return findOne[models.Brand](ctx, r.col, bson.M{"_id": id}, "brand")
}

func (r *mongoBrands) FindBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	return findOne[models.Brand](ctx, r.col, bson.M{"slug": slug}, "brand")
}

type mongoPhones struct{ col *mongo.Collection }

func (r *mongoPhones) Insert(ctx context.Context, phone *models.Phone) error {
	phone.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, phone); err != nil {
		return storeErr("insert phone", err)
	}
	return nil
}

func (r *mongoPhones) FindByID(ctx context.Context, id bson.ObjectID) (*models.Phone, error) {
	return findOne[models.Phone](ctx, r.col, bson.M{"_id": id}, "phone")
}

func (r *mongoPhones) ListAvailableByBrand(ctx context.Context, brand string, page utils.Page) ([]models.Phone, error) {
	return findAll[models.Phone](ctx, r.col, availableByBrandFilter(brand), page)
}

func (r *mongoPhones) ListBySeller(ctx context.Context, email string, page utils.Page) ([]models.Phone, error) {
	return findAll[models.Phone](ctx, r.col, bson.M{"sellerEmail": email}, page)
}

func (r *mongoPhones) MarkSold(ctx context.Context, id bson.ObjectID) (models.UpdateResult, error) {
	return markSold(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoPhones) AddImages(ctx context.Context, id bson.ObjectID, images []models.PhoneImage) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"images": bson.M{"$each": images}},
	})
	if err != nil {
		return storeErr("add phone images", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("phone: %w", utils.ErrNotFound)
	}
	return nil
}

func (r *mongoPhones) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, storeErr("delete phone", err)
	}
	return res.DeletedCount, nil
}

type mongoBookings struct{ col *mongo.Collection }

func (r *mongoBookings) Insert(ctx context.Context, booking *models.Booking) error {
	booking.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		return storeErr("insert booking", err)
	}
	return nil
}

func (r *mongoBookings) FindByID(ctx context.Context, id bson.ObjectID) (*models.Booking, error) {
	return findOne[models.Booking](ctx, r.col, bson.M{"_id": id}, "booking")
}

func (r *mongoBookings) ListByUser(ctx context.Context, email string, page utils.Page) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.col, bson.M{"userEmail": email}, page)
}

func (r *mongoBookings) MarkPaid(ctx context.Context, id bson.ObjectID, transactionID string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"paid": true, "transactionId": transactionID},
	})
	if err != nil {
		return storeErr("mark booking paid", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking: %w", utils.ErrNotFound)
	}
	return nil
}

type mongoPayments struct{ col *mongo.Collection }

func (r *mongoPayments) Insert(ctx context.Context, payment *models.Payment) error {
	payment.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, payment); err != nil {
		return storeErr("insert payment", err)
	}
	return nil
}

type mongoAdvertised struct{ col *mongo.Collection }

func (r *mongoAdvertised) Insert(ctx context.Context, item *models.AdvertisedItem) error {
	item.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return storeErr("insert advertised item", err)
	}
	return nil
}

func (r *mongoAdvertised) ListUnsold(ctx context.Context, page utils.Page) ([]models.AdvertisedItem, error) {
	return findAll[models.AdvertisedItem](ctx, r.col, unsoldFilter(), page)
}

func (r *mongoAdvertised) MarkSoldByPhone(ctx context.Context, phoneID string) (models.UpdateResult, error) {
	return markSold(ctx, r.col, bson.M{"phoneId": phoneID})
}

func (r *mongoAdvertised) DeleteByPhone(ctx context.Context, phoneID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"phoneId": phoneID})
	if err != nil {
		return 0, storeErr("delete advertised items", err)
	}
	return res.DeletedCount, nil
}
