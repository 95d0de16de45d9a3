// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/vault-unpacker/internal/adapter"
	"github.com/MKhiriev/vault-unpacker/internal/app"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/mock"
	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Unpack ───────────────────────────────────────────────────────────────────

func TestRemoteUnpackService_Unpack_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewRemoteUnpackService(mockAdapter, logger.Nop())

	ctx := context.Background()
	req := models.UnpackRequest{Payload: referencePacked, Password: referencePassword}
	entries := []models.VaultEntry{{Username: "bb", Password: "AY5yDeSWo21", AuthCode: "hh"}}
	mockAdapter.EXPECT().Unpack(ctx, req).Return(models.UnpackResponse{
		Plaintext: referencePlain,
		Entries:   entries,
		Length:    1,
	}, nil)

	got, err := svc.Unpack(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.UnpackResult{Plaintext: referencePlain, Entries: entries}, got)
}

func TestRemoteUnpackService_Unpack_MapsErrors(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
		wantErr    error
	}{
		{
			name:       "wrong password",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgAuthenticationFailed),
			wantErr:    crypto.ErrAuthentication,
		},
		{
			name:       "bad format",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidPayloadFormat),
			wantErr:    crypto.ErrFormat,
		},
		{
			name:       "no payload",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNoPayloadProvided),
			wantErr:    ErrValidationNoPayload,
		},
		{
			name:       "no password",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNoPasswordProvided),
			wantErr:    ErrValidationNoPassword,
		},
		{
			name:       "invalid json",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided),
			wantErr:    ErrInvalidDataProvided,
		},
		{
			name:       "integrity check",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgIntegrityCheckFailed),
			wantErr:    ErrInvalidDataProvided,
		},
		{
			name:       "too large",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrRequestEntityTooLarge, app.MsgPayloadTooLarge),
			wantErr:    ErrValidationPayloadTooLarge,
		},
		{
			name:       "timeout",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrServiceUnavailable, app.MsgRequestTimeout),
			wantErr:    ErrRemoteUnavailable,
		},
		{
			name:       "internal",
			adapterErr: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError),
			wantErr:    adapter.ErrInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAdapter := mock.NewMockServerAdapter(ctrl)
			svc := NewRemoteUnpackService(mockAdapter, logger.Nop())
			mockAdapter.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(models.UnpackResponse{}, tt.adapterErr)

			_, err := svc.Unpack(context.Background(), models.UnpackRequest{Payload: "p", Password: "pw"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoteUnpackService_Unpack_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewRemoteUnpackService(mockAdapter, logger.Nop())
	transportErr := errors.New("unpack request: dial tcp: connection refused")
	mockAdapter.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(models.UnpackResponse{}, transportErr)

	_, err := svc.Unpack(context.Background(), models.UnpackRequest{Payload: "p", Password: "pw"})

	assert.ErrorIs(t, err, transportErr)
}

// ── GetServerVersion ─────────────────────────────────────────────────────────

func TestRemoteUnpackService_GetServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewRemoteUnpackService(mockAdapter, logger.Nop()).(ServerInfoService)
	mockAdapter.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	got, err := svc.GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got)
}

func TestRemoteUnpackService_GetServerVersion_NotSpecified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewRemoteUnpackService(mockAdapter, logger.Nop()).(ServerInfoService)
	mockAdapter.EXPECT().Version(gomock.Any()).
		Return("", fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgVersionIsNotSpecified))

	_, err := svc.GetServerVersion(context.Background())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ── extractBody ──────────────────────────────────────────────────────────────

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "payload too large", extractBody(fmt.Errorf("%w: payload too large", adapter.ErrRequestEntityTooLarge)))
	assert.Equal(t, "no separator", extractBody(errors.New("no separator")))
	assert.Nil(t, mapAdapterError(nil))
}
