package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"deskhub/domain/dto"
	"deskhub/domain/ports"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/config"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

const (
	graphBaseURL     = "https://graph.microsoft.com/v1.0"
	maxInboxMessages = 50
)

var scopes = []string{"offline_access", "User.Read", "Mail.Read"}

// appConfig mirrors the registration file produced by the Azure portal.
type appConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	TenantID     string `json:"tenant_id"`
}

// OutlookProvider talks to Microsoft Graph for the combined inbox. Message
// listing goes through the REST endpoint directly; only the token dance uses
// the oauth2 package.
type OutlookProvider struct {
	cfg        *config.MailConfig
	tokens     ports.TokenStore
	httpClient *http.Client
}

func NewOutlookProvider(cfg *config.MailConfig, tokens ports.TokenStore) *OutlookProvider {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &OutlookProvider{
		cfg:    cfg,
		tokens: tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *OutlookProvider) oauthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(p.cfg.OutlookAppConfig)
	if err != nil {
		return nil, apperrors.Config(fmt.Sprintf("outlook app config not readable: %s", p.cfg.OutlookAppConfig))
	}
	var app appConfig
	if err := json.Unmarshal(b, &app); err != nil {
		return nil, apperrors.Config("outlook app config file is not valid")
	}
	if app.ClientID == "" {
		return nil, apperrors.Config("outlook app config is missing client_id")
	}

	tenant := app.TenantID
	if tenant == "" {
		tenant = "common"
	}
	return &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		Endpoint:     microsoft.AzureADEndpoint(tenant),
		RedirectURL:  p.cfg.OutlookRedirectURL,
		Scopes:       scopes,
	}, nil
}

func (p *OutlookProvider) AuthURL(state string) (string, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state), nil
}

// Exchange trades the callback code for a token, resolves the mailbox
// address from /me, and persists the token.
func (p *OutlookProvider) Exchange(ctx context.Context, code string) (email, tokenKey string, err error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return "", "", err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", "", apperrors.Provider("outlook", "", err)
	}

	email, err = p.fetchAddress(ctx, token.AccessToken)
	if err != nil {
		return "", "", err
	}

	tokenKey = utils.TokenKey("outlook", email)
	data, err := json.Marshal(token)
	if err != nil {
		return "", "", err
	}
	if err := p.tokens.Write(ctx, tokenKey, data); err != nil {
		return "", "", err
	}

	return email, tokenKey, nil
}

// Fetch lists recent messages via Graph. A dead refresh token surfaces as
// ErrProvider so the caller can tell the user to reconnect the account.
func (p *OutlookProvider) Fetch(ctx context.Context, account string, tokenKey string, lookbackDays int) ([]dto.MailMessage, error) {
	conf, err := p.oauthConfig()
	if err != nil {
		return nil, err
	}

	token, err := p.loadToken(ctx, tokenKey)
	if err != nil {
		return nil, apperrors.Provider("outlook", account, err)
	}

	source := conf.TokenSource(ctx, token)
	current, err := source.Token()
	if err != nil {
		return nil, apperrors.Provider("outlook", account, fmt.Errorf("token refresh failed, reconnect the account: %w", err))
	}

	since := time.Now().UTC().AddDate(0, 0, -lookbackDays).Format("2006-01-02T15:04:05Z")
	params := url.Values{}
	params.Set("$select", "subject,from,receivedDateTime,bodyPreview,webLink")
	params.Set("$filter", fmt.Sprintf("receivedDateTime ge %s", since))
	params.Set("$orderby", "receivedDateTime desc")
	params.Set("$top", fmt.Sprintf("%d", maxInboxMessages))

	reqURL := fmt.Sprintf("%s/me/messages?%s", graphBaseURL, params.Encode())
	var payload struct {
		Value []struct {
			Subject string `json:"subject"`
			From    struct {
				EmailAddress struct {
					Name    string `json:"name"`
					Address string `json:"address"`
				} `json:"emailAddress"`
			} `json:"from"`
			ReceivedDateTime string `json:"receivedDateTime"`
			BodyPreview      string `json:"bodyPreview"`
			WebLink          string `json:"webLink"`
		} `json:"value"`
	}
	if err := p.graphGet(ctx, reqURL, current.AccessToken, &payload); err != nil {
		return nil, apperrors.Provider("outlook", account, err)
	}

	messages := make([]dto.MailMessage, 0, len(payload.Value))
	for _, m := range payload.Value {
		from := m.From.EmailAddress.Name
		if from == "" {
			from = m.From.EmailAddress.Address
		} else if m.From.EmailAddress.Address != "" {
			from = fmt.Sprintf("%s <%s>", m.From.EmailAddress.Name, m.From.EmailAddress.Address)
		}
		messages = append(messages, dto.MailMessage{
			Provider:   "outlook",
			Account:    account,
			Subject:    m.Subject,
			From:       from,
			ReceivedAt: utils.ParseMailDate(m.ReceivedDateTime),
			Snippet:    m.BodyPreview,
			Link:       m.WebLink,
		})
	}

	p.persistRefreshed(ctx, tokenKey, token, current)

	return messages, nil
}

// fetchAddress reads the signed-in mailbox address, preferring mail over
// userPrincipalName.
func (p *OutlookProvider) fetchAddress(ctx context.Context, accessToken string) (string, error) {
	var me struct {
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := p.graphGet(ctx, graphBaseURL+"/me", accessToken, &me); err != nil {
		return "", apperrors.Provider("outlook", "", err)
	}
	if me.Mail != "" {
		return me.Mail, nil
	}
	if me.UserPrincipalName != "" {
		return me.UserPrincipalName, nil
	}
	return "", apperrors.Provider("outlook", "", fmt.Errorf("profile has no mailbox address"))
}

func (p *OutlookProvider) graphGet(ctx context.Context, reqURL, accessToken string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph API returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func (p *OutlookProvider) loadToken(ctx context.Context, tokenKey string) (*oauth2.Token, error) {
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

func (p *OutlookProvider) persistRefreshed(ctx context.Context, tokenKey string, old, current *oauth2.Token) {
	if current.AccessToken == old.AccessToken && current.RefreshToken == old.RefreshToken {
		return
	}
	data, err := json.Marshal(current)
	if err != nil {
		return
	}
	if err := p.tokens.Write(ctx, tokenKey, data); err != nil {
		logger.WarnContext(ctx, "Failed to persist refreshed Outlook token", "key", tokenKey, "error", err)
	}
}
