package validation

import "testing"

type slotInput struct {
	Date  string `json:"date" validate:"required,date"`
	Start string `json:"start_time" validate:"required,clock"`
}

func TestDateAndClockRules(t *testing.T) {
	v := New()

	if err := v.Struct(slotInput{Date: "2026-09-01", Start: "10:00"}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if err := v.Struct(slotInput{Date: "01/09/2026", Start: "10:00"}); err == nil {
		t.Fatal("expected date format error")
	}
	if err := v.Struct(slotInput{Date: "2026-09-01", Start: "10am"}); err == nil {
		t.Fatal("expected clock format error")
	}
	if err := v.Struct(slotInput{Date: "2026-02-30", Start: "10:00"}); err == nil {
		t.Fatal("expected impossible date to fail")
	}
}

func TestErrorDetailsUseWireNames(t *testing.T) {
	v := New()

	err := v.Struct(slotInput{})
	errs := v.ValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	seen := map[string]bool{}
	for _, fe := range errs {
		seen[fe.Field()] = true
	}
	if !seen["date"] || !seen["start_time"] {
		t.Fatalf("expected wire field names, got %v", seen)
	}
}
