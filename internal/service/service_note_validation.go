package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed note ids and share requests before
// they reach the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

// CreateNote has nothing to check: an empty title or content is stored as is.
func (v *NoteValidationService) CreateNote(ctx context.Context, owner models.User, input models.NoteInput) (models.Note, error) {
	return v.inner.CreateNote(ctx, owner, input)
}

func (v *NoteValidationService) GetNote(ctx context.Context, user models.User, id string) (models.Note, error) {
	if err := validators.ValidateNoteID(id); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, user, id)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, user models.User) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, user)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, user models.User, id string, patch models.NotePatch) (models.Note, error) {
	if err := validators.ValidateNoteID(id); err != nil {
		return models.Note{}, err
	}
	return v.inner.UpdateNote(ctx, user, id, patch)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, user models.User, id string) error {
	if err := validators.ValidateNoteID(id); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, user, id)
}

func (v *NoteValidationService) ShareNote(ctx context.Context, user models.User, id string, request models.ShareRequest) (models.Note, error) {
	if err := validators.ValidateNoteID(id); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("error during share request validation: %w", err)
	}

	return v.inner.ShareNote(ctx, user, id, request)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	return v.inner.SearchNotes(ctx, query)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
