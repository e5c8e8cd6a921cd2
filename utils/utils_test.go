package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Apple", "apple"},
		{"  Sony Xperia ", "sony-xperia"},
		{"Huawéi / Honor", "huawei-honor"},
		{"OnePlus!!", "oneplus"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        Page
	}{
		{"absent returns everything", "", "", Page{}},
		{"limit only", "", "10", Page{Skip: 0, Limit: 10}},
		{"second page", "2", "10", Page{Skip: 10, Limit: 10}},
		{"bad page clamps to first", "-3", "5", Page{Skip: 0, Limit: 5}},
		{"limit capped", "1", "1000", Page{Skip: 0, Limit: 100}},
		{"garbage limit", "2", "abc", Page{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePage(tt.page, tt.limit); got != tt.want {
				t.Errorf("ParsePage(%q, %q) = %+v, want %+v", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestParseObjectID(t *testing.T) {
	if _, err := ParseObjectID("not-hex"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := ParseObjectID("64b7f0c2a1b2c3d4e5f60718"); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusForbidden},
		{fmt.Errorf("owner mismatch: %w", ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("phone: %w", ErrNotFound), http.StatusNotFound},
		{ErrStorageDisabled, http.StatusServiceUnavailable},
		{fmt.Errorf("insert: %w", ErrStore), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
