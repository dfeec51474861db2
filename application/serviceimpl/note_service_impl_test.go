package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/infrastructure/postgres"
	"deskhub/pkg/apperrors"
)

func TestNoteLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(postgres.NewNoteRepository(db))
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{
		Title: "meeting minutes",
		Body:  "decided to ship friday",
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	noteID := mustUUID(t, note.ID)

	// Partial update leaves the other field untouched.
	title := "sprint minutes"
	updated, err := svc.UpdateNote(ctx, noteID, &dto.UpdateNoteRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if updated.Title != "sprint minutes" {
		t.Errorf("title = %q, want sprint minutes", updated.Title)
	}
	if updated.Body != "decided to ship friday" {
		t.Errorf("body = %q, want unchanged", updated.Body)
	}

	if err := svc.DeleteNote(ctx, noteID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if _, err := svc.GetNote(ctx, noteID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetNote after delete = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetNote(ctx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetNote unknown id = %v, want ErrNotFound", err)
	}
}

func TestListNotesSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(postgres.NewNoteRepository(db))
	ctx := context.Background()

	mk := func(title, body string) {
		t.Helper()
		if _, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{Title: title, Body: body}); err != nil {
			t.Fatalf("CreateNote(%s): %v", title, err)
		}
	}
	mk("grocery list", "milk, eggs")
	mk("release plan", "ship the billing change")
	mk("journal", "billing call went fine")

	// Search matches title or body.
	got, err := svc.ListNotes(ctx, "billing")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("q=billing matches = %d, want 2", len(got))
	}

	got, err = svc.ListNotes(ctx, "")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("unfiltered = %d, want 3", len(got))
	}
}

func TestListNotesSearchIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("set pragma: %v", err)
	}
	svc := NewNoteService(postgres.NewNoteRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{Title: "Billing Notes", Body: "Quarterly Summary"}); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	for _, query := range []string{"billing", "BILLING", "quarterly"} {
		got, err := svc.ListNotes(ctx, query)
		if err != nil {
			t.Fatalf("ListNotes(%q): %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("ListNotes(%q) = %d results, want 1", query, len(got))
		}
	}
}
