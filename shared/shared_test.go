package shared_test

import (
	"testing"

	"inn/shared"
	"inn/shared/constant"
	"inn/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	result, err := shared.ConvertStringToInt("42")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}

	if _, err := shared.ConvertStringToInt("forty-two"); err == nil {
		t.Error("expected an error, got nil")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "zero limit", total: 21, limit: 0, expected: 1},
		{name: "zero total", total: 0, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Name     string `db:"name"`
		Location string `db:"location"`
		Internal string
	}

	fields := shared.TransformFields(patch{Name: "Deluxe 101", Internal: "skipped"}, "admin@example.com")

	if fields["name"] != "Deluxe 101" {
		t.Errorf("expected name to be 'Deluxe 101', got %v", fields["name"])
	}

	if _, ok := fields["location"]; ok {
		t.Error("expected zero-valued location to be omitted")
	}

	if _, ok := fields["Internal"]; ok {
		t.Error("expected untagged field to be omitted")
	}

	if fields[constant.FieldModifiedBy] != "admin@example.com" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be a dto.Filter")
	}

	if filter.Field != "id" || filter.Value != "room-1" || filter.Table != "rooms" {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected EQ operator, got %v", filter.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room", "get", "room-1"); got != "room:get:room-1" {
		t.Errorf("expected 'room:get:room-1', got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if first != second {
		t.Errorf("expected stable cache keys, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different cache keys for different params")
	}
}
