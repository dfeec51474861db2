package dto

import "time"

// MailMessage is a provider-neutral inbox item. ReceivedAt is the zero time
// when the provider's date header could not be parsed; those sort last.
type MailMessage struct {
	Provider   string    `json:"provider"` // gmail, outlook
	Account    string    `json:"account"`
	Subject    string    `json:"subject"`
	From       string    `json:"from"`
	ReceivedAt time.Time `json:"receivedAt"`
	Snippet    string    `json:"snippet"`
	Link       string    `json:"link"`
}

type InboxResponse struct {
	Messages []MailMessage `json:"messages"`
	Warnings []string      `json:"warnings"`
}

type MailAccountResponse struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConnectResponse struct {
	AuthURL string `json:"authUrl"`
}
