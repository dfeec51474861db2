package routes

import (
	"github.com/gofiber/fiber/v2"

	"deskhub/interfaces/api/handlers"
)

func SetupMailRoutes(api fiber.Router, h *handlers.Handlers) {
	mail := api.Group("/mail")

	mail.Get("/accounts", h.MailHandler.ListAccounts)
	mail.Get("/inbox", h.MailHandler.Inbox)

	mail.Get("/gmail/connect", h.MailHandler.ConnectGmail)
	mail.Get("/gmail/callback", h.MailHandler.GmailCallback)
	mail.Delete("/gmail/:id", h.MailHandler.DisconnectGmail)

	mail.Get("/outlook/connect", h.MailHandler.ConnectOutlook)
	mail.Get("/outlook/callback", h.MailHandler.OutlookCallback)
	mail.Delete("/outlook/:id", h.MailHandler.DisconnectOutlook)
}
