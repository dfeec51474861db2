package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/utils"
)

// Services holds every service the handlers need.
type Services struct {
	AuthService      services.AuthService
	SessionTTL       time.Duration
	ContactService   services.ContactService
	NoteService      services.NoteService
	TaskService      services.TaskService
	EventService     services.EventService
	BookmarkService  services.BookmarkService
	MailService      services.MailService
	DashboardService services.DashboardService
}

// Handlers aggregates all HTTP handlers.
type Handlers struct {
	AuthHandler      *AuthHandler
	ContactHandler   *ContactHandler
	NoteHandler      *NoteHandler
	TaskHandler      *TaskHandler
	EventHandler     *EventHandler
	BookmarkHandler  *BookmarkHandler
	MailHandler      *MailHandler
	DashboardHandler *DashboardHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:      NewAuthHandler(s.AuthService, s.SessionTTL),
		ContactHandler:   NewContactHandler(s.ContactService),
		NoteHandler:      NewNoteHandler(s.NoteService),
		TaskHandler:      NewTaskHandler(s.TaskService),
		EventHandler:     NewEventHandler(s.EventService),
		BookmarkHandler:  NewBookmarkHandler(s.BookmarkService),
		MailHandler:      NewMailHandler(s.MailService),
		DashboardHandler: NewDashboardHandler(s.DashboardService),
	}
}

// respondError maps service errors onto the response envelope.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, apperrors.ErrConfig):
		return utils.ConfigErrorResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrProvider):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
