package controllers

import (
	"net/http"
	"testing"

	"github.com/princinho/resalebackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBrands(t *testing.T) {
	env := newTestEnv(t, nil)
	apple := bson.NewObjectID()
	env.mem.Brands = []models.Brand{
		{ID: apple, Name: "Apple", Slug: "apple"},
		{ID: bson.NewObjectID(), Name: "OnePlus", Slug: "oneplus"},
	}

	w := env.do(t, http.MethodGet, "/brands", nil, "")
	wantStatus(t, w, http.StatusOK)
	if got := decode[[]models.Brand](t, w); len(got) != 2 {
		t.Fatalf("brands = %+v", got)
	}

	w = env.do(t, http.MethodGet, "/brands/"+apple.Hex(), nil, "")
	wantStatus(t, w, http.StatusOK)
	if got := decode[models.Brand](t, w); got.Name != "Apple" {
		t.Fatalf("brand = %+v", got)
	}

	w = env.do(t, http.MethodGet, "/brands/slug/OnePlus", nil, "")
	wantStatus(t, w, http.StatusOK)
	if got := decode[models.Brand](t, w); got.Slug != "oneplus" {
		t.Fatalf("brand by slug = %+v", got)
	}

	for _, target := range []string{"/brands/" + bson.NewObjectID().Hex(), "/brands/slug/nokia"} {
		w = env.do(t, http.MethodGet, target, nil, "")
		wantStatus(t, w, http.StatusOK)
		if w.Body.String() != "null" {
			t.Fatalf("%s body = %s", target, w.Body.String())
		}
	}

	wantStatus(t, env.do(t, http.MethodGet, "/brands/not-an-id", nil, ""), http.StatusBadRequest)
}
