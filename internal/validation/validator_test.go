// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/toolrec/internal/recommend"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

type testQuery struct {
	TopN     int     `query:"top_n" validate:"min=1,max=50"`
	Budget   string  `query:"budget" validate:"omitempty,budget"`
	Sort     string  `json:"sort" validate:"omitempty,oneof=price_asc price_desc name"`
	Page     int     `query:"page" validate:"gte=1"`
	MinPrice float64 `query:"min_price" validate:"gte=0"`
	Name     string  `validate:"omitempty,max=5"`
}

func validQuery() testQuery {
	return testQuery{TopN: 5, Page: 1}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*testQuery)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*testQuery) {}, "", ""},
		{"budget lower case", func(q *testQuery) { q.Budget = "medium" }, "", ""},
		{"top_n too large", func(q *testQuery) { q.TopN = 51 }, "top_n", "top_n must be at most 50"},
		{"top_n zero", func(q *testQuery) { q.TopN = 0 }, "top_n", "top_n must be at least 1"},
		{"bad budget", func(q *testQuery) { q.Budget = "cheap" }, "budget", "budget must be one of: Low, Medium, High"},
		{"bad sort uses json tag", func(q *testQuery) { q.Sort = "random" }, "sort", "sort must be one of: price_asc price_desc name"},
		{"page below one", func(q *testQuery) { q.Page = 0 }, "page", "page must be greater than or equal to 1"},
		{"negative price", func(q *testQuery) { q.MinPrice = -1 }, "min_price", "min_price must be greater than or equal to 0"},
		{"untagged field name", func(q *testQuery) { q.Name = "toolong" }, "Name", "Name must be at most 5 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := validQuery()
			tt.mutate(&q)
			verr := ValidateStruct(&q)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			first := verr.First()
			if first.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", first.Field(), tt.wantField)
			}
			if first.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", first.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	q := testQuery{TopN: 100, Page: 0}
	verr := ValidateStruct(&q)
	if verr == nil {
		t.Fatal("expected errors")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("len(Errors()) = %d, want 2", len(verr.Errors()))
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("combined message %q should join errors", verr.Error())
	}
	if verr.Errors()[0].Tag() != "max" || verr.Errors()[0].Param() != "50" {
		t.Errorf("first error = %s/%s, want max/50", verr.Errors()[0].Tag(), verr.Errors()[0].Param())
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" || verr.First() != nil {
		t.Error("empty error should have default message and no first field")
	}
}

func TestValidateStruct_BudgetMatchesRecommend(t *testing.T) {
	t.Parallel()

	for _, b := range recommend.Budgets() {
		for _, name := range []string{string(b), strings.ToLower(string(b)), strings.ToUpper(string(b))} {
			q := validQuery()
			q.Budget = name
			if verr := ValidateStruct(&q); verr != nil {
				t.Errorf("budget %q rejected: %v", name, verr)
			}
			if _, err := recommend.ParseBudget(name); err != nil {
				t.Errorf("recommend.ParseBudget(%q) = %v, validator accepted it", name, err)
			}
		}
	}
}
