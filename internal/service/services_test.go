// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/mock"
	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defaultApp() config.App {
	return config.App{
		Salt:          crypto.DefaultSalt,
		KDFIterations: crypto.DefaultIterations,
		Version:       "1.0.0",
	}
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_Success(t *testing.T) {
	svcs, err := NewServices(config.ServerConfig{App: defaultApp()}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svcs.UnpackService)
	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))

	got, err := svcs.UnpackService.Unpack(context.Background(), models.UnpackRequest{
		Payload:  referencePacked,
		Password: referencePassword,
	})
	require.NoError(t, err)
	assert.Equal(t, referencePlain, got.Plaintext)
}

func TestNewServices_ValidatesRequests(t *testing.T) {
	svcs, err := NewServices(config.ServerConfig{App: defaultApp()}, logger.Nop())
	require.NoError(t, err)

	_, err = svcs.UnpackService.Unpack(context.Background(), models.UnpackRequest{Payload: referencePacked})

	assert.ErrorIs(t, err, ErrValidationNoPassword)
}

func TestNewServices_InvalidKDFParams(t *testing.T) {
	app := defaultApp()
	app.Salt = ""

	svcs, err := NewServices(config.ServerConfig{App: app}, logger.Nop())

	assert.Nil(t, svcs)
	assert.ErrorIs(t, err, crypto.ErrEmptySalt)
}

func TestNewServices_NoVersion(t *testing.T) {
	app := defaultApp()
	app.Version = ""

	svcs, err := NewServices(config.ServerConfig{App: app}, logger.Nop())

	assert.Nil(t, svcs)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// NewClientServices
// ─────────────────────────────────────────────

func TestNewClientServices_Local(t *testing.T) {
	svcs, err := NewClientServices(defaultApp(), nil, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, svcs.ServerInfoService)

	_, err = svcs.UnpackService.Unpack(context.Background(), models.UnpackRequest{
		Payload:  referencePacked,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestNewClientServices_LocalInvalidIterations(t *testing.T) {
	app := defaultApp()
	app.KDFIterations = 0

	_, err := NewClientServices(app, nil, logger.Nop())

	assert.ErrorIs(t, err, crypto.ErrInvalidIterations)
}

func TestNewClientServices_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svcs, err := NewClientServices(config.App{}, mockAdapter, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, svcs.ServerInfoService)

	mockAdapter.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(models.UnpackResponse{Plaintext: "x"}, nil)

	got, err := svcs.UnpackService.Unpack(context.Background(), models.UnpackRequest{Payload: "p", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "x", got.Plaintext)

	// validation runs before the adapter is reached
	_, err = svcs.UnpackService.Unpack(context.Background(), models.UnpackRequest{Payload: "p"})
	assert.ErrorIs(t, err, ErrValidationNoPassword)
}
