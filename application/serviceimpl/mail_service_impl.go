package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/ports"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/logger"
)

// MailProvider is one OAuth mail backend: consent URL, code exchange, and
// message fetching.
type MailProvider interface {
	AuthURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (email, tokenKey string, err error)
	ports.MailFetcher
}

type mailServiceImpl struct {
	gmailRepo    repositories.GmailAccountRepository
	outlookRepo  repositories.OutlookAccountRepository
	tokens       ports.TokenStore
	gmail        MailProvider
	outlook      MailProvider
	lookbackDays int
}

func NewMailService(
	gmailRepo repositories.GmailAccountRepository,
	outlookRepo repositories.OutlookAccountRepository,
	tokens ports.TokenStore,
	gmail MailProvider,
	outlook MailProvider,
	lookbackDays int,
) services.MailService {
	return &mailServiceImpl{
		gmailRepo:    gmailRepo,
		outlookRepo:  outlookRepo,
		tokens:       tokens,
		gmail:        gmail,
		outlook:      outlook,
		lookbackDays: lookbackDays,
	}
}

func (s *mailServiceImpl) GmailAuthURL(ctx context.Context, state string) (string, error) {
	return s.gmail.AuthURL(state)
}

func (s *mailServiceImpl) HandleGmailCallback(ctx context.Context, code string) (*dto.MailAccountResponse, error) {
	email, tokenKey, err := s.gmail.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	account := &models.GmailAccount{
		ID:       uuid.New(),
		Email:    email,
		TokenKey: tokenKey,
	}
	if err := s.gmailRepo.Upsert(ctx, account); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Gmail account connected", "email", email)

	return &dto.MailAccountResponse{
		ID:        account.ID.String(),
		Provider:  "gmail",
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *mailServiceImpl) DisconnectGmail(ctx context.Context, id uuid.UUID) error {
	account, err := s.gmailRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("gmail account")
		}
		return err
	}

	// Token removal is best-effort; a stale blob is harmless once the row
	// is gone.
	if err := s.tokens.Delete(ctx, account.TokenKey); err != nil {
		logger.WarnContext(ctx, "Failed to delete Gmail token", "email", account.Email, "error", err)
	}

	return s.gmailRepo.Delete(ctx, id)
}

func (s *mailServiceImpl) OutlookAuthURL(ctx context.Context, state string) (string, error) {
	return s.outlook.AuthURL(state)
}

func (s *mailServiceImpl) HandleOutlookCallback(ctx context.Context, code string) (*dto.MailAccountResponse, error) {
	email, tokenKey, err := s.outlook.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	account := &models.OutlookAccount{
		ID:       uuid.New(),
		Email:    email,
		TokenKey: tokenKey,
	}
	if err := s.outlookRepo.Upsert(ctx, account); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Outlook account connected", "email", email)

	return &dto.MailAccountResponse{
		ID:        account.ID.String(),
		Provider:  "outlook",
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *mailServiceImpl) DisconnectOutlook(ctx context.Context, id uuid.UUID) error {
	account, err := s.outlookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("outlook account")
		}
		return err
	}

	if err := s.tokens.Delete(ctx, account.TokenKey); err != nil {
		logger.WarnContext(ctx, "Failed to delete Outlook token", "email", account.Email, "error", err)
	}

	return s.outlookRepo.Delete(ctx, id)
}

func (s *mailServiceImpl) ListAccounts(ctx context.Context) ([]dto.MailAccountResponse, error) {
	gmailAccounts, err := s.gmailRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	outlookAccounts, err := s.outlookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MailAccountResponse, 0, len(gmailAccounts)+len(outlookAccounts))
	for _, a := range gmailAccounts {
		out = append(out, dto.MailAccountResponse{
			ID:        a.ID.String(),
			Provider:  "gmail",
			Email:     a.Email,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range outlookAccounts {
		out = append(out, dto.MailAccountResponse{
			ID:        a.ID.String(),
			Provider:  "outlook",
			Email:     a.Email,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

// Inbox pulls every connected account. One broken account turns into a
// warning and never hides mail from the others. Messages sort newest first;
// unparsable dates carry the zero time and sink to the bottom.
func (s *mailServiceImpl) Inbox(ctx context.Context) (*dto.InboxResponse, error) {
	resp := &dto.InboxResponse{
		Messages: []dto.MailMessage{},
		Warnings: []string{},
	}

	gmailAccounts, err := s.gmailRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range gmailAccounts {
		messages, err := s.gmail.Fetch(ctx, a.Email, a.TokenKey, s.lookbackDays)
		if err != nil {
			logger.WarnContext(ctx, "Gmail fetch failed", "account", a.Email, "error", err)
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("gmail %s: fetch failed, try reconnecting the account", a.Email))
			continue
		}
		resp.Messages = append(resp.Messages, messages...)
	}

	outlookAccounts, err := s.outlookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range outlookAccounts {
		messages, err := s.outlook.Fetch(ctx, a.Email, a.TokenKey, s.lookbackDays)
		if err != nil {
			logger.WarnContext(ctx, "Outlook fetch failed", "account", a.Email, "error", err)
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("outlook %s: fetch failed, try reconnecting the account", a.Email))
			continue
		}
		resp.Messages = append(resp.Messages, messages...)
	}

	sort.SliceStable(resp.Messages, func(i, j int) bool {
		return resp.Messages[i].ReceivedAt.After(resp.Messages[j].ReceivedAt)
	})

	return resp, nil
}
