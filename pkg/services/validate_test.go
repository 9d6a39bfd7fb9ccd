package services

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestValidateArticleCoercesValues(t *testing.T) {
	doc := map[string]interface{}{
		"title":   3.5,
		"body":    []interface{}{"text", 1, int64(2), 2.25, true, nil},
		"enabled": false,
		"extra":   "ignored",
	}
	got, err := ValidateArticle(doc, "/articles/x", "20240101000000")
	if err != nil {
		t.Fatalf("ValidateArticle failed: %v", err)
	}
	if got.Title != "3.5" {
		t.Errorf("Title = %q, want %q", got.Title, "3.5")
	}
	want := []string{"text", "1", "2", "2.25", "true", ""}
	if !reflect.DeepEqual(got.Body, want) {
		t.Errorf("Body = %q, want %q", got.Body, want)
	}
	if got.Enabled {
		t.Errorf("Enabled = true, want false")
	}
	if got.Slug != "/articles/x" || got.Mtime != "20240101000000" {
		t.Errorf("Slug, Mtime = %q, %q; want injected values", got.Slug, got.Mtime)
	}
}

func TestValidateArticleDefaultsEnabled(t *testing.T) {
	got, err := ValidateArticle(map[string]interface{}{"title": "T", "body": "b"}, "s", "m")
	if err != nil {
		t.Fatalf("ValidateArticle failed: %v", err)
	}
	if !got.Enabled {
		t.Errorf("Enabled = false, want true")
	}
	if !reflect.DeepEqual(got.Body, []string{"b"}) {
		t.Errorf("Body = %q, want %q", got.Body, []string{"b"})
	}
}

func TestValidateArticleIgnoresDocumentSlugAndMtime(t *testing.T) {
	doc := map[string]interface{}{"title": "T", "body": "b", "slug": "forged", "mtime": "forged"}
	got, err := ValidateArticle(doc, "real", "20240101000000")
	if err != nil {
		t.Fatalf("ValidateArticle failed: %v", err)
	}
	if got.Slug != "real" || got.Mtime != "20240101000000" {
		t.Errorf("Slug, Mtime = %q, %q; want repository values", got.Slug, got.Mtime)
	}
}

func TestValidateArticleRejects(t *testing.T) {
	docs := map[string]map[string]interface{}{
		"missing title":   {"body": "b"},
		"missing body":    {"title": "T"},
		"string enabled":  {"title": "T", "body": "b", "enabled": "yes"},
		"numeric enabled": {"title": "T", "body": "b", "enabled": 1},
		"null enabled":    {"title": "T", "body": "b", "enabled": nil},
	}
	for name, doc := range docs {
		if _, err := ValidateArticle(doc, "s", "m"); !errors.Is(err, ErrInvalidArticle) {
			t.Errorf("%s: error = %v, want ErrInvalidArticle", name, err)
		}
	}
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestToString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"plain", "plain"},
		{nil, ""},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(9), "9"},
		{1.0, "1"},
		{0.1, "0.1"},
		{float32(2.5), "2.5"},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "2020-01-02T03:04:05Z"},
		{stringer{}, "stringer"},
		{[]interface{}{"a", 1}, "[a 1]"},
	}
	for _, tt := range tests {
		if got := ToString(tt.in); got != tt.want {
			t.Errorf("ToString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
