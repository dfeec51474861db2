package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
)

type contactServiceImpl struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) services.ContactService {
	return &contactServiceImpl{contactRepo: contactRepo}
}

func (s *contactServiceImpl) CreateContact(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	contact := &models.Contact{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		Notes: strings.TrimSpace(req.Notes),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

func (s *contactServiceImpl) GetContact(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("contact")
		}
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

func (s *contactServiceImpl) ListContacts(ctx context.Context, query string) ([]dto.ContactResponse, error) {
	contacts, err := s.contactRepo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}
	return dto.ToContactResponses(contacts), nil
}

func (s *contactServiceImpl) UpdateContact(ctx context.Context, id uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("contact")
		}
		return nil, err
	}

	if req.Name != nil {
		contact.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		contact.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Notes != nil {
		contact.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

func (s *contactServiceImpl) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contactRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("contact")
		}
		return err
	}
	return s.contactRepo.Delete(ctx, id)
}
