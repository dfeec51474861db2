package serviceimpl

import (
	"context"
	"testing"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/infrastructure/postgres"
)

func TestBookmarkDefaultCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(postgres.NewBookmarkRepository(db))
	ctx := context.Background()

	bookmark, err := svc.CreateBookmark(ctx, &dto.CreateBookmarkRequest{
		Title: "Search",
		URL:   "https://search.example.com",
	})
	if err != nil {
		t.Fatalf("CreateBookmark: %v", err)
	}
	if bookmark.Category != models.BookmarkCategoryOther {
		t.Errorf("category = %q, want other", bookmark.Category)
	}
	if bookmark.Kind != models.LinkKindWeb {
		t.Errorf("kind = %q, want web", bookmark.Kind)
	}
}

func TestBookmarkFileURLNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(postgres.NewBookmarkRepository(db))
	ctx := context.Background()

	bookmark, err := svc.CreateBookmark(ctx, &dto.CreateBookmarkRequest{
		Title: "Budget sheet",
		URL:   `C:\finance\budget.xlsx`,
		Kind:  models.LinkKindFile,
	})
	if err != nil {
		t.Fatalf("CreateBookmark: %v", err)
	}
	if bookmark.URL != "file:///C:/finance/budget.xlsx" {
		t.Errorf("url = %q, want file:///C:/finance/budget.xlsx", bookmark.URL)
	}
}

func TestGroupedBookmarksFixedOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(postgres.NewBookmarkRepository(db))
	ctx := context.Background()

	mk := func(title, category string) {
		t.Helper()
		if _, err := svc.CreateBookmark(ctx, &dto.CreateBookmarkRequest{
			Title:    title,
			URL:      "https://example.com/" + title,
			Category: category,
		}); err != nil {
			t.Fatalf("CreateBookmark(%s): %v", title, err)
		}
	}
	mk("standup", models.BookmarkCategoryDaily)
	mk("payroll", models.BookmarkCategoryImportant)
	mk("wiki", models.BookmarkCategoryCompany)

	groups, err := svc.GroupedBookmarks(ctx)
	if err != nil {
		t.Fatalf("GroupedBookmarks: %v", err)
	}

	if len(groups) != len(models.BookmarkCategories) {
		t.Fatalf("groups = %d, want %d (empty categories included)", len(groups), len(models.BookmarkCategories))
	}
	for i, category := range models.BookmarkCategories {
		if groups[i].Category != category {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i].Category, category)
		}
	}
	if len(groups[0].Bookmarks) != 1 || groups[0].Count != 1 || groups[0].Bookmarks[0].Title != "standup" {
		t.Errorf("daily group = %+v, want [standup]", groups[0])
	}
	// personal has no bookmarks but still shows up with an empty list
	if groups[2].Category != models.BookmarkCategoryPersonal || groups[2].Count != 0 || len(groups[2].Bookmarks) != 0 {
		t.Errorf("personal group = %+v, want empty", groups[2])
	}
}

func TestListBookmarksFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(postgres.NewBookmarkRepository(db))
	ctx := context.Background()

	mk := func(title, url, notes, category string) {
		t.Helper()
		if _, err := svc.CreateBookmark(ctx, &dto.CreateBookmarkRequest{
			Title:    title,
			URL:      url,
			Notes:    notes,
			Category: category,
		}); err != nil {
			t.Fatalf("CreateBookmark(%s): %v", title, err)
		}
	}
	mk("CI dashboard", "https://ci.example.com", "", models.BookmarkCategoryDaily)
	mk("Design doc", "https://docs.example.com/design", "architecture notes", models.BookmarkCategoryReference)
	mk("Team wiki", "https://wiki.example.com", "links to design assets", models.BookmarkCategoryReference)

	// q matches title, URL, or notes
	got, err := svc.ListBookmarks(ctx, dto.BookmarkFilter{Query: "design"})
	if err != nil {
		t.Fatalf("ListBookmarks: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("q=design matches = %d, want 2", len(got))
	}

	// q and category combine with AND
	got, err = svc.ListBookmarks(ctx, dto.BookmarkFilter{Query: "design", Category: models.BookmarkCategoryReference})
	if err != nil {
		t.Fatalf("ListBookmarks: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("q+category matches = %d, want 2", len(got))
	}

	got, err = svc.ListBookmarks(ctx, dto.BookmarkFilter{Query: "dashboard", Category: models.BookmarkCategoryReference})
	if err != nil {
		t.Fatalf("ListBookmarks: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("mismatched AND filter matches = %d, want 0", len(got))
	}
}

func TestListBookmarksFilterIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("set pragma: %v", err)
	}
	svc := NewBookmarkService(postgres.NewBookmarkRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateBookmark(ctx, &dto.CreateBookmarkRequest{
		Title: "Payroll Portal",
		URL:   "https://HR.example.com/payroll",
		Notes: "Monthly Payslips",
	}); err != nil {
		t.Fatalf("CreateBookmark: %v", err)
	}

	for _, query := range []string{"payroll", "PAYROLL", "hr.example", "payslips"} {
		got, err := svc.ListBookmarks(ctx, dto.BookmarkFilter{Query: query})
		if err != nil {
			t.Fatalf("ListBookmarks(%q): %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("ListBookmarks(%q) = %d results, want 1", query, len(got))
		}
	}
}
