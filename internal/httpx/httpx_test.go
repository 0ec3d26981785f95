package httpx

import (
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSONValid(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name": "Ada"}`), &p); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if p.Name != "Ada" {
		t.Fatalf("unexpected name: %q", p.Name)
	}
}

func TestDecodeJSONUnknownField(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name": "Ada", "extra": 1}`), &p); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONTrailingGarbage(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name": "Ada"}{"name": "Bob"}`), &p); err == nil {
		t.Fatal("expected error for trailing content")
	}
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(``), &p); err == nil {
		t.Fatal("expected error for empty body")
	}
}
