package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type ContactService interface {
	CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	GetContact(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
	ListContacts(ctx context.Context, query string) ([]dto.ContactResponse, error)
	UpdateContact(ctx context.Context, id uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
