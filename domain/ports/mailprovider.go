package ports

import (
	"context"

	"deskhub/domain/dto"
)

// MailFetcher pulls recent messages for one connected account. lookbackDays
// bounds how far back the provider query reaches.
type MailFetcher interface {
	Fetch(ctx context.Context, account string, tokenKey string, lookbackDays int) ([]dto.MailMessage, error)
}
