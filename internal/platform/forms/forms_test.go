package forms

import (
	"reflect"
	"testing"
)

type sampleForm struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Count    int    `validate:"min=0"`
	Kind     string `validate:"required,oneof=A B C"`
}

func TestCheck_Valid(t *testing.T) {
	f := sampleForm{FullName: "Jane Doe", Email: "jane@example.com", Kind: "A"}
	if errs := Check(f); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCheck_FieldErrors(t *testing.T) {
	f := sampleForm{FullName: "J", Email: "not-an-email", Count: -1, Kind: "Z"}
	errs := Check(f)
	if errs == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"fullName", "email", "count", "kind"} {
		if errs.Field(field) == "" {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(d); got != "2024-03-15" {
		t.Errorf("round trip mismatch: %q", got)
	}
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestAppendListItem(t *testing.T) {
	list := []string{"MBBS"}
	list = AppendListItem(list, "  MD ")
	list = AppendListItem(list, "")
	list = AppendListItem(list, "   ")
	list = AppendListItem(list, "MD") // duplicates allowed

	want := []string{"MBBS", "MD", "MD"}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("expected %v, got %v", want, list)
	}
}

func TestAppendListItem_PreservesCase(t *testing.T) {
	got := AppendListItem(nil, "PeNiCiLLin")
	if got[0] != "PeNiCiLLin" {
		t.Errorf("entries must keep their typed case, got %q", got[0])
	}
}

func TestRemoveListItem(t *testing.T) {
	list := []string{"a", "b", "c"}
	if got := RemoveListItem(list, 1); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("unexpected result %v", got)
	}
	if got := RemoveListItem(list, 5); !reflect.DeepEqual(got, list) {
		t.Errorf("out-of-range index must be a no-op, got %v", got)
	}
	if got := RemoveListItem(list, -1); !reflect.DeepEqual(got, list) {
		t.Errorf("negative index must be a no-op, got %v", got)
	}
}
