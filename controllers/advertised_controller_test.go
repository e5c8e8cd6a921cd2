package controllers

import (
	"net/http"
	"testing"

	"github.com/princinho/resalebackend/models"
)

func TestAdvertisedItems(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, phoneID := range []string{"p1", "p2"} {
		w := env.do(t, http.MethodPost, "/advertised-items", map[string]any{"phoneId": phoneID, "name": "phone " + phoneID}, "")
		wantStatus(t, w, http.StatusOK)
	}
	if env.mem.Advertised[0].SalesStatus != models.StatusAvailable {
		t.Fatalf("status = %q", env.mem.Advertised[0].SalesStatus)
	}

	w := env.do(t, http.MethodPatch, "/advertised-items?phoneId=p1", nil, "")
	wantStatus(t, w, http.StatusOK)
	if res := decode[models.UpdateResult](t, w); res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("mark sold = %+v", res)
	}

	w = env.do(t, http.MethodGet, "/advertised-items", nil, "")
	wantStatus(t, w, http.StatusOK)
	got := decode[[]models.AdvertisedItem](t, w)
	if len(got) != 1 || got[0].PhoneID != "p2" {
		t.Fatalf("unsold items = %+v", got)
	}

	w = env.do(t, http.MethodPatch, "/advertised-items?phoneId=p9", nil, "")
	wantStatus(t, w, http.StatusOK)
	if res := decode[models.UpdateResult](t, w); res.UpsertedCount != 1 {
		t.Fatalf("upsert = %+v", res)
	}

	wantStatus(t, env.do(t, http.MethodPatch, "/advertised-items", nil, ""), http.StatusBadRequest)
	wantStatus(t, env.do(t, http.MethodPost, "/advertised-items", map[string]any{"name": "x"}, ""), http.StatusBadRequest)
}
