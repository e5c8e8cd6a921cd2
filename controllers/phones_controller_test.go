package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/testutil"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPhonesByBrandHidesSold(t *testing.T) {
	env := newTestEnv(t, nil)
	seller := env.bearer(t, "seller@x.com")

	w := env.do(t, http.MethodPost, "/phones", map[string]any{"brand": "Apple", "name": "iPhone 12", "resalePrice": 300}, seller)
	wantStatus(t, w, http.StatusOK)
	phoneID := decode[map[string]any](t, w)["insertedId"].(string)

	if phone := env.mem.Phones[0]; phone.SellerEmail != "seller@x.com" || phone.SalesStatus != models.StatusAvailable {
		t.Fatalf("stored phone = %+v", phone)
	}

	w = env.do(t, http.MethodGet, "/phones?brand=Apple", nil, "")
	wantStatus(t, w, http.StatusOK)
	if got := decode[[]map[string]any](t, w); len(got) != 1 || got[0]["_id"] != phoneID {
		t.Fatalf("listing = %v", got)
	}

	for range 2 {
		w = env.do(t, http.MethodPatch, "/phones?phoneId="+phoneID, nil, "")
		wantStatus(t, w, http.StatusOK)
	}
	res := decode[models.UpdateResult](t, w)
	if !res.Acknowledged || res.MatchedCount != 1 || res.ModifiedCount != 0 {
		t.Fatalf("second mark sold = %+v", res)
	}

	w = env.do(t, http.MethodGet, "/phones?brand=Apple", nil, "")
	if got := decode[[]map[string]any](t, w); len(got) != 0 {
		t.Fatalf("sold phone still listed: %v", got)
	}

	w = env.do(t, http.MethodGet, "/my-products?email=seller@x.com", nil, "")
	wantStatus(t, w, http.StatusOK)
	if got := decode[[]models.Phone](t, w); len(got) != 1 || got[0].SalesStatus != models.StatusSold {
		t.Fatalf("my products = %+v", got)
	}
}

func TestMarkPhoneSoldBadID(t *testing.T) {
	env := newTestEnv(t, nil)
	w := env.do(t, http.MethodPatch, "/phones?phoneId=xyz", nil, "")
	wantStatus(t, w, http.StatusBadRequest)
}

func TestCreatePhoneGuards(t *testing.T) {
	env := newTestEnv(t, nil)
	body := map[string]any{"brand": "Apple", "resalePrice": 300, "sellerEmail": "other@x.com"}

	wantStatus(t, env.do(t, http.MethodPost, "/phones", body, ""), http.StatusUnauthorized)
	wantStatus(t, env.do(t, http.MethodPost, "/phones", body, env.bearer(t, "seller@x.com")), http.StatusForbidden)
	wantStatus(t, env.do(t, http.MethodPost, "/phones", map[string]any{"brand": "Apple"}, env.bearer(t, "seller@x.com")), http.StatusBadRequest)

	if len(env.mem.Phones) != 0 {
		t.Fatalf("phones = %d, want none", len(env.mem.Phones))
	}
}

func seedPhone(mem *testutil.MemStore, seller, brand string) bson.ObjectID {
	id := bson.NewObjectID()
	mem.Phones = append(mem.Phones, models.Phone{ID: id, Brand: brand, SellerEmail: seller, ResalePrice: 100, SalesStatus: models.StatusAvailable})
	return id
}

func TestDeletePhone(t *testing.T) {
	env := newTestEnv(t, nil)
	id := seedPhone(env.mem, "seller@x.com", "Apple")
	other := seedPhone(env.mem, "seller@x.com", "Apple")
	env.mem.Advertised = []models.AdvertisedItem{
		{ID: bson.NewObjectID(), PhoneID: id.Hex()},
		{ID: bson.NewObjectID(), PhoneID: id.Hex()},
		{ID: bson.NewObjectID(), PhoneID: other.Hex()},
	}
	target := "/my-products/" + id.Hex()

	wantStatus(t, env.do(t, http.MethodDelete, target, nil, ""), http.StatusUnauthorized)
	wantStatus(t, env.do(t, http.MethodDelete, target, nil, env.bearer(t, "thief@x.com")), http.StatusForbidden)
	wantStatus(t, env.do(t, http.MethodDelete, "/my-products/bad", nil, env.bearer(t, "seller@x.com")), http.StatusBadRequest)
	wantStatus(t, env.do(t, http.MethodDelete, "/my-products/"+bson.NewObjectID().Hex(), nil, env.bearer(t, "seller@x.com")), http.StatusNotFound)
	if len(env.mem.Phones) != 2 {
		t.Fatal("a rejected delete removed a phone")
	}

	w := env.do(t, http.MethodDelete, target, nil, env.bearer(t, "seller@x.com"))
	wantStatus(t, w, http.StatusOK)
	res := decode[models.DeleteResult](t, w)
	if !res.Acknowledged || res.DeletedCount != 1 || res.AdvertisedDeleted != 2 {
		t.Fatalf("delete result = %+v", res)
	}
	if len(env.mem.Phones) != 1 || env.mem.Phones[0].ID != other {
		t.Fatalf("phones left = %+v", env.mem.Phones)
	}
	if len(env.mem.Advertised) != 1 || env.mem.Advertised[0].PhoneID != other.Hex() {
		t.Fatalf("advertised left = %+v", env.mem.Advertised)
	}
}

func TestDeletePhoneRemovesImages(t *testing.T) {
	bucket := testutil.NewImageBucket()
	env := newTestEnv(t, bucket)
	id := seedPhone(env.mem, "seller@x.com", "Apple")
	bucket.Objects["phones/"+id.Hex()+"/a.png"] = []byte("x")
	env.mem.Phones[0].Images = []models.PhoneImage{{ObjectName: "phones/" + id.Hex() + "/a.png"}}

	wantStatus(t, env.do(t, http.MethodDelete, "/my-products/"+id.Hex(), nil, env.bearer(t, "seller@x.com")), http.StatusOK)
	if bucket.Len() != 0 {
		t.Fatalf("objects left = %d", bucket.Len())
	}
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func imageRequest(t *testing.T, target, authHeader string, names ...string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, name := range names {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(pngBytes); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", authHeader)
	return req
}

func TestUploadPhoneImages(t *testing.T) {
	bucket := testutil.NewImageBucket()
	env := newTestEnv(t, bucket)
	id := seedPhone(env.mem, "seller@x.com", "Apple")
	target := "/phones/" + id.Hex() + "/images"
	owner := env.bearer(t, "seller@x.com")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, imageRequest(t, target, env.bearer(t, "thief@x.com"), "a.png"))
	wantStatus(t, w, http.StatusForbidden)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, imageRequest(t, target, owner, "a.png", "b.png"))
	wantStatus(t, w, http.StatusCreated)
	got := decode[map[string][]models.PhoneImage](t, w)["images"]
	if len(got) != 2 || got[0].MimeType != "image/png" {
		t.Fatalf("images = %+v", got)
	}
	if len(env.mem.Phones[0].Images) != 2 || bucket.Len() != 2 {
		t.Fatalf("stored images = %d, objects = %d", len(env.mem.Phones[0].Images), bucket.Len())
	}

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, imageRequest(t, target, owner, "c.png"))
	wantStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, imageRequest(t, target, owner))
	wantStatus(t, w, http.StatusBadRequest)
}

func TestUploadPhoneImagesDisabled(t *testing.T) {
	env := newTestEnv(t, nil)
	id := seedPhone(env.mem, "seller@x.com", "Apple")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, imageRequest(t, "/phones/"+id.Hex()+"/images", env.bearer(t, "seller@x.com"), "a.png"))
	wantStatus(t, w, http.StatusServiceUnavailable)
}
