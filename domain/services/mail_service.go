package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type MailService interface {
	// GmailAuthURL starts the OAuth flow and returns the consent URL.
	GmailAuthURL(ctx context.Context, state string) (string, error)
	// HandleGmailCallback exchanges the code, persists the token, and
	// upserts the account row keyed by the mailbox address.
	HandleGmailCallback(ctx context.Context, code string) (*dto.MailAccountResponse, error)
	DisconnectGmail(ctx context.Context, id uuid.UUID) error

	OutlookAuthURL(ctx context.Context, state string) (string, error)
	HandleOutlookCallback(ctx context.Context, code string) (*dto.MailAccountResponse, error)
	DisconnectOutlook(ctx context.Context, id uuid.UUID) error

	ListAccounts(ctx context.Context) ([]dto.MailAccountResponse, error)
	// Inbox aggregates recent mail across every connected account, newest
	// first. Accounts that fail to fetch contribute a warning, not an error.
	Inbox(ctx context.Context) (*dto.InboxResponse, error)
}
