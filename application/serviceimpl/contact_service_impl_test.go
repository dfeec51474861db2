package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"deskhub/domain/dto"
	"deskhub/infrastructure/postgres"
	"deskhub/pkg/apperrors"
)

func TestContactSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(postgres.NewContactRepository(db))
	ctx := context.Background()

	mk := func(name, email, phone string) {
		t.Helper()
		if _, err := svc.CreateContact(ctx, &dto.CreateContactRequest{Name: name, Email: email, Phone: phone}); err != nil {
			t.Fatalf("CreateContact(%s): %v", name, err)
		}
	}
	mk("Ana Dentist", "office@smileclinic.example", "+31 20 555 0101")
	mk("Ben Plumber", "ben@pipes.example", "+31 20 555 0102")
	mk("Clara", "clara@smileclinic.example", "0101")

	// The query hits name, email, and phone.
	tests := []struct {
		query string
		want  int
	}{
		{"dentist", 1},
		{"smileclinic", 2},
		{"0101", 2},
		{"", 3},
		{"nobody", 0},
	}
	for _, tt := range tests {
		got, err := svc.ListContacts(ctx, tt.query)
		if err != nil {
			t.Fatalf("ListContacts(%q): %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("ListContacts(%q) = %d results, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestContactUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(postgres.NewContactRepository(db))
	ctx := context.Background()

	contact, err := svc.CreateContact(ctx, &dto.CreateContactRequest{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	id := mustUUID(t, contact.ID)

	phone := "+31 20 555 0199"
	updated, err := svc.UpdateContact(ctx, id, &dto.UpdateContactRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if updated.Phone != phone {
		t.Errorf("phone = %q, want %q", updated.Phone, phone)
	}
	if updated.Email != "ana@example.com" {
		t.Errorf("email = %q, want unchanged", updated.Email)
	}

	if err := svc.DeleteContact(ctx, id); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if _, err := svc.GetContact(ctx, id); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetContact after delete = %v, want ErrNotFound", err)
	}
}

func TestContactSearchIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	// Match LIKE semantics of the postgres driver, where LIKE is case-sensitive.
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("set pragma: %v", err)
	}
	svc := NewContactService(postgres.NewContactRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateContact(ctx, &dto.CreateContactRequest{Name: "Alice Smith", Email: "Alice@Example.com"}); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	for _, query := range []string{"alice", "ALICE", "sMiTh", "example.COM"} {
		got, err := svc.ListContacts(ctx, query)
		if err != nil {
			t.Fatalf("ListContacts(%q): %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("ListContacts(%q) = %d results, want 1", query, len(got))
		}
	}
}
