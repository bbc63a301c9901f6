package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("Given 45 rows at 20 per page Then 3 pages", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 20)
		if p.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", p.TotalPages)
		}
		if !p.HasNext || !p.HasPrev {
			t.Error("page 2 of 3 should have next and prev")
		}
	})

	t.Run("Given empty result Then still one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		if p.TotalPages != 1 {
			t.Errorf("expected 1 page, got %d", p.TotalPages)
		}
		if p.HasNext || p.HasPrev {
			t.Error("single empty page should have neither next nor prev")
		}
	})

	t.Run("Given invalid page and per_page Then normalized", func(t *testing.T) {
		p := BuildPaginationFromPage(10, 0, 0)
		if p.Page != 1 || p.PerPage != 20 {
			t.Errorf("expected normalized page=1 per_page=20, got page=%d per_page=%d", p.Page, p.PerPage)
		}
	})
}
