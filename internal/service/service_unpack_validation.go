package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-unpacker/internal/validators"
	"github.com/MKhiriev/vault-unpacker/models"
)

type UnpackValidationService struct {
	inner     UnpackService
	validator validators.Validator
}

func NewUnpackValidationService() UnpackServiceWrapper {
	return &UnpackValidationService{
		validator: validators.NewUnpackRequestValidator(),
	}
}

func (v *UnpackValidationService) Unpack(ctx context.Context, req models.UnpackRequest) (models.UnpackResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UnpackResult{}, mapValidationError(err)
	}

	return v.inner.Unpack(ctx, req)
}

func (v *UnpackValidationService) Wrap(inner UnpackService) UnpackService {
	v.inner = inner
	return v
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyPayload):
		return ErrValidationNoPayload
	case errors.Is(err, validators.ErrEmptyPassword):
		return ErrValidationNoPassword
	case errors.Is(err, validators.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrValidationPayloadTooLarge, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
