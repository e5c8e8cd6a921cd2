package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func ParseObjectID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("invalid id %q: %w", hex, ErrBadRequest)
	}
	return id, nil
}

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}
	return strings.Contains(err.Error(), "E11000 duplicate key error")
}

// GenerateSlug lower-cases name, strips accents and joins the remaining
// alphanumeric runs with hyphens.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(name) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s := nonSlugChars.ReplaceAllString(strings.ToLower(b.String()), "-")
	return strings.Trim(s, "-")
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Page is an optional skip/limit window. The zero value means "everything".
type Page struct {
	Skip  int64
	Limit int64
}

// ParsePage reads the optional page/limit query values. Without a positive
// limit the whole result set is returned.
func ParsePage(pageStr, limitStr string) Page {
	limit := ParseIntDefault(limitStr, 0)
	if limit <= 0 {
		return Page{}
	}
	if limit > 100 {
		limit = 100
	}
	page := ParseIntDefault(pageStr, 1)
	if page < 1 {
		page = 1
	}
	return Page{Skip: int64((page - 1) * limit), Limit: int64(limit)}
}
