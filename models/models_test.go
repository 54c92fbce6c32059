package models

import (
	"errors"
	"math"
	"testing"
)

// Test TeamForm validation
func TestTeamFormValidation(t *testing.T) {
	validForm := TeamForm{
		Name:    "Real Betis",
		League:  "La Liga",
		Founded: 1907,
	}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs)
	}

	invalidForm := TeamForm{
		Name:    "",
		League:  "",
		Founded: 1400,
	}
	errs := invalidForm.Validate()
	if len(errs) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errs)
	}
}

func TestFoundedBounds(t *testing.T) {
	cases := map[int]bool{
		1499: false,
		1500: true,
		1899: true,
		2024: true,
		2025: false,
		0:    false,
	}
	for year, want := range cases {
		if got := ValidFounded(year); got != want {
			t.Errorf("ValidFounded(%d) = %v, want %v", year, got, want)
		}
	}
}

// Test SignupForm validation
func TestSignupFormValidation(t *testing.T) {
	validForm := SignupForm{Username: "alice", Email: "a@x.com", Password: "pw1"}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs)
	}

	missing := SignupForm{Username: "alice"}
	errs := missing.Validate()
	if len(errs) != 1 || errs[0].Message != "All fields are required" {
		t.Errorf("Expected required-fields error, got: %v", errs)
	}

	badEmail := SignupForm{Username: "alice", Email: "invalid-email", Password: "pw1"}
	if errs := badEmail.Validate(); len(errs) != 1 {
		t.Errorf("Expected 1 error for invalid email, got: %v", errs)
	}
}

func TestUserUpdateFormAllowsEmptyPassword(t *testing.T) {
	form := UserUpdateForm{ID: 3, Username: "bob", Email: "bob@example.com"}
	if errs := form.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors, got: %v", errs)
	}

	form.ID = 0
	if errs := form.Validate(); !errs.HasErrors() {
		t.Error("Expected an error for a missing user ID")
	}
}

func TestValidationErrorsMatchSentinel(t *testing.T) {
	var errs ValidationErrors
	errs.Add("founded", "out of range")

	var err error = errs
	if !errors.Is(err, ErrValidation) {
		t.Error("Expected ValidationErrors to match ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("ValidationErrors must not match ErrNotFound")
	}
	if err.Error() != "out of range" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestTeamQueryNormalize(t *testing.T) {
	q := TeamQuery{Page: 0, PageSize: 0}
	q.Normalize(MaxPageSize)
	if q.Page != 1 || q.PageSize != DefaultPageSize {
		t.Errorf("Expected defaults 1/%d, got %d/%d", DefaultPageSize, q.Page, q.PageSize)
	}

	q = TeamQuery{Page: 3, PageSize: 1_000_000}
	q.Normalize(50)
	if q.PageSize != 50 {
		t.Errorf("Expected page size clamped to 50, got %d", q.PageSize)
	}
	if q.Offset() != 100 {
		t.Errorf("Expected offset 100, got %d", q.Offset())
	}

	q = TeamQuery{Page: math.MaxInt, PageSize: 10}
	q.Normalize(MaxPageSize)
	if q.Offset() < 0 {
		t.Errorf("Expected non-negative offset for huge page, got %d", q.Offset())
	}
}

func TestNewTeamPage(t *testing.T) {
	page := NewTeamPage(make([]Team, 3), 23, TeamQuery{Page: 3, PageSize: 10})
	if page.TotalPages != 3 {
		t.Errorf("Expected 3 pages, got %d", page.TotalPages)
	}
	if !page.HasPrev() || page.HasNext() {
		t.Error("Expected last page to have a previous page and no next page")
	}
}
