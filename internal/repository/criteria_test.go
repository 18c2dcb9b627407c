package repository

import (
	"errors"
	"testing"

	"docvault/internal/common"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	var c SearchCriteria
	c.Normalize()

	if c.Page != DefaultPage {
		t.Errorf("page = %d, want %d", c.Page, DefaultPage)
	}
	if c.PageSize != DefaultPageSize {
		t.Errorf("page size = %d, want %d", c.PageSize, DefaultPageSize)
	}
	if c.SortBy != SortByUploadDate {
		t.Errorf("sort by = %s, want %s", c.SortBy, SortByUploadDate)
	}
	if c.SortDirection != SortAsc {
		t.Errorf("sort direction = %s, want %s", c.SortDirection, SortAsc)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	c := SearchCriteria{Page: 3, PageSize: 25, SortBy: SortByFilename, SortDirection: SortDesc}
	c.Normalize()

	if c.Page != 3 || c.PageSize != 25 || c.SortBy != SortByFilename || c.SortDirection != SortDesc {
		t.Errorf("Normalize changed explicit values: %+v", c)
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SearchCriteria)
		wantErr bool
	}{
		{"defaults pass", func(*SearchCriteria) {}, false},
		{"max page size passes", func(c *SearchCriteria) { c.PageSize = MaxPageSize }, false},
		{"negative page", func(c *SearchCriteria) { c.Page = -1 }, true},
		{"negative page size", func(c *SearchCriteria) { c.PageSize = -1 }, true},
		{"page size over max", func(c *SearchCriteria) { c.PageSize = MaxPageSize + 1 }, true},
		{"unknown sort field", func(c *SearchCriteria) { c.SortBy = "SIZE" }, true},
		{"unknown sort direction", func(c *SearchCriteria) { c.SortDirection = "SIDEWAYS" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c SearchCriteria
			c.Normalize()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				if !errors.Is(err, common.ErrValidation) {
					t.Errorf("err = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
