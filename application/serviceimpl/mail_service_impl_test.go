package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/infrastructure/postgres"
	"deskhub/pkg/apperrors"
)

type fakeMailProvider struct {
	email    string
	tokenKey string
	messages []dto.MailMessage
	fetchErr error
}

func (f *fakeMailProvider) AuthURL(state string) (string, error) {
	return "https://provider.example.com/auth?state=" + state, nil
}

func (f *fakeMailProvider) Exchange(ctx context.Context, code string) (string, string, error) {
	return f.email, f.tokenKey, nil
}

func (f *fakeMailProvider) Fetch(ctx context.Context, account, tokenKey string, lookbackDays int) ([]dto.MailMessage, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.messages, nil
}

type fakeTokenStore struct {
	deleted   []string
	deleteErr error
}

func (f *fakeTokenStore) Write(ctx context.Context, key string, data []byte) error { return nil }
func (f *fakeTokenStore) Read(ctx context.Context, key string) ([]byte, error)    { return nil, nil }
func (f *fakeTokenStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

func TestGmailCallbackUpsertsByEmail(t *testing.T) {
	db := newTestDB(t)
	gmail := &fakeMailProvider{email: "me@gmail.com", tokenKey: "gmail_me-gmail-com"}
	svc := NewMailService(
		postgres.NewGmailAccountRepository(db),
		postgres.NewOutlookAccountRepository(db),
		&fakeTokenStore{},
		gmail,
		&fakeMailProvider{},
		7,
	)
	ctx := context.Background()

	if _, err := svc.HandleGmailCallback(ctx, "code-1"); err != nil {
		t.Fatalf("HandleGmailCallback: %v", err)
	}
	// Reconnecting the same mailbox refreshes the row instead of duplicating it.
	if _, err := svc.HandleGmailCallback(ctx, "code-2"); err != nil {
		t.Fatalf("HandleGmailCallback (reconnect): %v", err)
	}

	accounts, err := svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(accounts))
	}
	if accounts[0].Provider != "gmail" || accounts[0].Email != "me@gmail.com" {
		t.Errorf("account = %+v", accounts[0])
	}
}

func TestInboxMergesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	older := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	gmail := &fakeMailProvider{
		email:    "me@gmail.com",
		tokenKey: "gmail_me",
		messages: []dto.MailMessage{
			{Provider: "gmail", Subject: "older", ReceivedAt: older},
			{Provider: "gmail", Subject: "undated"}, // zero time sinks last
		},
	}
	outlook := &fakeMailProvider{
		email:    "me@work.com",
		tokenKey: "outlook_me",
		messages: []dto.MailMessage{
			{Provider: "outlook", Subject: "newer", ReceivedAt: newer},
		},
	}
	svc := NewMailService(
		postgres.NewGmailAccountRepository(db),
		postgres.NewOutlookAccountRepository(db),
		&fakeTokenStore{},
		gmail,
		outlook,
		7,
	)
	ctx := context.Background()

	if _, err := svc.HandleGmailCallback(ctx, "code"); err != nil {
		t.Fatalf("connect gmail: %v", err)
	}
	if _, err := svc.HandleOutlookCallback(ctx, "code"); err != nil {
		t.Fatalf("connect outlook: %v", err)
	}

	inbox, err := svc.Inbox(ctx)
	if err != nil {
		t.Fatalf("Inbox: %v", err)
	}
	if len(inbox.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", inbox.Warnings)
	}

	var subjects []string
	for _, m := range inbox.Messages {
		subjects = append(subjects, m.Subject)
	}
	want := []string{"newer", "older", "undated"}
	if len(subjects) != len(want) {
		t.Fatalf("messages = %v, want %v", subjects, want)
	}
	for i := range want {
		if subjects[i] != want[i] {
			t.Errorf("messages[%d] = %q, want %q", i, subjects[i], want[i])
		}
	}
}

func TestInboxAccountFailureIsWarning(t *testing.T) {
	db := newTestDB(t)
	gmail := &fakeMailProvider{
		email:    "me@gmail.com",
		tokenKey: "gmail_me",
		messages: []dto.MailMessage{
			{Provider: "gmail", Subject: "still here", ReceivedAt: time.Now()},
		},
	}
	outlook := &fakeMailProvider{
		email:    "me@work.com",
		tokenKey: "outlook_me",
		fetchErr: errors.New("token expired"),
	}
	svc := NewMailService(
		postgres.NewGmailAccountRepository(db),
		postgres.NewOutlookAccountRepository(db),
		&fakeTokenStore{},
		gmail,
		outlook,
		7,
	)
	ctx := context.Background()

	if _, err := svc.HandleGmailCallback(ctx, "code"); err != nil {
		t.Fatalf("connect gmail: %v", err)
	}
	if _, err := svc.HandleOutlookCallback(ctx, "code"); err != nil {
		t.Fatalf("connect outlook: %v", err)
	}

	inbox, err := svc.Inbox(ctx)
	if err != nil {
		t.Fatalf("Inbox: %v (one broken account must not fail the whole inbox)", err)
	}
	if len(inbox.Messages) != 1 || inbox.Messages[0].Subject != "still here" {
		t.Errorf("messages = %+v, want the gmail one", inbox.Messages)
	}
	if len(inbox.Warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", inbox.Warnings)
	}
}

func TestDisconnectGmail(t *testing.T) {
	db := newTestDB(t)
	tokens := &fakeTokenStore{deleteErr: errors.New("blob store down")}
	gmail := &fakeMailProvider{email: "me@gmail.com", tokenKey: "gmail_me"}
	svc := NewMailService(
		postgres.NewGmailAccountRepository(db),
		postgres.NewOutlookAccountRepository(db),
		tokens,
		gmail,
		&fakeMailProvider{},
		7,
	)
	ctx := context.Background()

	account, err := svc.HandleGmailCallback(ctx, "code")
	if err != nil {
		t.Fatalf("connect gmail: %v", err)
	}

	// Token deletion failing is logged, not fatal; the row still goes away.
	if err := svc.DisconnectGmail(ctx, mustUUID(t, account.ID)); err != nil {
		t.Fatalf("DisconnectGmail: %v", err)
	}
	if len(tokens.deleted) != 1 || tokens.deleted[0] != "gmail_me" {
		t.Errorf("token deletes = %v, want [gmail_me]", tokens.deleted)
	}

	accounts, err := svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("accounts after disconnect = %d, want 0", len(accounts))
	}

	if err := svc.DisconnectGmail(ctx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("disconnect unknown id = %v, want ErrNotFound", err)
	}
}
