package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"deskhub/domain/dto"
	"deskhub/domain/ports"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/config"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

const maxInboxMessages = 50

// GmailProvider handles the Gmail OAuth flow and message fetching. Tokens are
// persisted through the token store and refreshed in place when Google
// rotates the access token.
type GmailProvider struct {
	cfg        *config.MailConfig
	tokens     ports.TokenStore
	httpClient *http.Client
}

func NewGmailProvider(cfg *config.MailConfig, tokens ports.TokenStore) *GmailProvider {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GmailProvider{
		cfg:    cfg,
		tokens: tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// withHTTPClient makes the oauth2 exchange and every token refresh go
// through the timeout-bearing client instead of http.DefaultClient.
func (p *GmailProvider) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func (p *GmailProvider) oauthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(p.cfg.GoogleClientSecrets)
	if err != nil {
		return nil, apperrors.Config(fmt.Sprintf("gmail client secrets not readable: %s", p.cfg.GoogleClientSecrets))
	}
	conf, err := google.ConfigFromJSON(b, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, apperrors.Config("gmail client secrets file is not valid")
	}
	if p.cfg.GoogleRedirectURL != "" {
		conf.RedirectURL = p.cfg.GoogleRedirectURL
	}
	return conf, nil
}

// AuthURL returns the consent URL. AccessTypeOffline plus prompt=consent
// makes Google hand back a refresh token even for repeat connections.
func (p *GmailProvider) AuthURL(state string) (string, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// Exchange trades the callback code for a token, resolves the mailbox
// address, and persists the token under a key derived from that address.
func (p *GmailProvider) Exchange(ctx context.Context, code string) (email, tokenKey string, err error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", "", err
	}

	ctx = p.withHTTPClient(ctx)
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", "", apperrors.Provider("gmail", "", err)
	}

	srv, err := gmail.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		return "", "", apperrors.Provider("gmail", "", err)
	}
	profile, err := srv.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return "", "", apperrors.Provider("gmail", "", err)
	}
	email = profile.EmailAddress

	tokenKey = utils.TokenKey("gmail", email)
	data, err := json.Marshal(token)
	if err != nil {
		return "", "", err
	}
	if err := p.tokens.Write(ctx, tokenKey, data); err != nil {
		return "", "", err
	}

	return email, tokenKey, nil
}

// Fetch lists recent inbox messages for one account. The query excludes spam
// and trash and bounds the lookback window server-side.
func (p *GmailProvider) Fetch(ctx context.Context, account string, tokenKey string, lookbackDays int) ([]dto.MailMessage, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return nil, err
	}

	token, err := p.loadToken(ctx, tokenKey)
	if err != nil {
		return nil, apperrors.Provider("gmail", account, err)
	}

	ctx = p.withHTTPClient(ctx)
	source := conf.TokenSource(ctx, token)
	srv, err := gmail.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, apperrors.Provider("gmail", account, err)
	}

	query := fmt.Sprintf("newer_than:%dd -category:spam -in:trash", lookbackDays)
	list, err := srv.Users.Messages.List("me").
		Q(query).
		MaxResults(maxInboxMessages).
		Context(ctx).Do()
	if err != nil {
		return nil, apperrors.Provider("gmail", account, err)
	}

	messages := make([]dto.MailMessage, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := srv.Users.Messages.Get("me", ref.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject", "Date").
			Context(ctx).Do()
		if err != nil {
			logger.WarnContext(ctx, "Failed to fetch Gmail message", "account", account, "id", ref.Id, "error", err)
			continue
		}

		item := dto.MailMessage{
			Provider: "gmail",
			Account:  account,
			Snippet:  msg.Snippet,
			Link:     fmt.Sprintf("https://mail.google.com/mail/u/0/#inbox/%s", ref.Id),
		}
		if msg.Payload != nil {
			for _, h := range msg.Payload.Headers {
				switch h.Name {
				case "From":
					item.From = h.Value
				case "Subject":
					item.Subject = h.Value
				case "Date":
					item.ReceivedAt = utils.ParseMailDate(h.Value)
				}
			}
		}
		messages = append(messages, item)
	}

	p.persistRefreshed(ctx, tokenKey, token, source)

	return messages, nil
}

func (p *GmailProvider) loadToken(ctx context.Context, tokenKey string) (*oauth2.Token, error) {
	data, err := p.tokens.Read(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, fmt.Errorf("stored token is not valid: %w", err)
	}
	return token, nil
}

// persistRefreshed re-saves the token when the source rotated it, so the next
// fetch starts from a live access token.
func (p *GmailProvider) persistRefreshed(ctx context.Context, tokenKey string, old *oauth2.Token, source oauth2.TokenSource) {
	current, err := source.Token()
	if err != nil {
		return
	}
	if current.AccessToken == old.AccessToken && current.RefreshToken == old.RefreshToken {
		return
	}
	data, err := json.Marshal(current)
	if err != nil {
		return
	}
	if err := p.tokens.Write(ctx, tokenKey, data); err != nil {
		logger.WarnContext(ctx, "Failed to persist refreshed Gmail token", "key", tokenKey, "error", err)
	}
}
