package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/mock"
	"github.com/MKhiriev/vault-unpacker/internal/service"
	"github.com/MKhiriev/vault-unpacker/internal/tui"
	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	referencePassword = "t4jTdJHA221"
	referencePacked   = "TmdMb0xMR3JBdG95UHBBSm8vaElQdz09OmVUMHV3K1Uzc0JabHRrcktsMjFKUml6bEhGU25CSkJrVkNUVnpITEhjSDlIdUNmR3g3RTJnUjNIQXp0d042T2hVK0UyNHF3UFd1b1RrMk04c1RHL2hYSnJtaGwxNzNCS01QWVpUcmw3WVA3TE1CVGxTQS93V1E9PQ=="
	referencePlain    = `[{"email":"","username":"bb","password":"AY5yDeSWo21","auth_code":"hh"}]`
)

type testApp struct {
	app       *App
	unpack    *mock.MockUnpackService
	prompter  *mock.MockPasswordPrompter
	stdout    *bytes.Buffer
	clipboard []string
}

func newTestApp(t *testing.T, input config.Input, interactive bool) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	ta := &testApp{
		unpack:   mock.NewMockUnpackService(ctrl),
		prompter: mock.NewMockPasswordPrompter(ctrl),
		stdout:   &bytes.Buffer{},
	}

	ta.app = &App{
		cfg:         config.ClientConfig{Input: input},
		services:    &service.ClientServices{UnpackService: ta.unpack},
		prompter:    ta.prompter,
		buildInfo:   models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"),
		stdin:       strings.NewReader(""),
		stdout:      ta.stdout,
		interactive: interactive,
		copyToClipboard: func(s string) error {
			ta.clipboard = append(ta.clipboard, s)
			return nil
		},
		logger: logger.Nop(),
	}

	return ta
}

func vaultResult() models.UnpackResult {
	return models.UnpackResult{
		Plaintext: referencePlain,
		Entries:   []models.VaultEntry{{Username: "bb", Password: "AY5yDeSWo21", AuthCode: "hh"}},
	}
}

// ─────────────────────────────────────────────
// NewApp
// ─────────────────────────────────────────────

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(config.ClientConfig{}, nil, nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(config.ClientConfig{}, &service.ClientServices{}, nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestNewApp_NoPrompterIsNotInteractive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := &service.ClientServices{UnpackService: mock.NewMockUnpackService(ctrl)}

	app, err := NewApp(config.ClientConfig{}, svcs, nil, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.False(t, app.interactive)
}

// ─────────────────────────────────────────────
// Unpacking
// ─────────────────────────────────────────────

func TestRun_ConfiguredPassword(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed", Password: "pw"}, false)
	ta.unpack.EXPECT().
		Unpack(gomock.Any(), models.UnpackRequest{Payload: "packed", Password: "pw"}).
		Return(vaultResult(), nil)

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.stdout.String()
	assert.Contains(t, out, "bb")
	assert.NotContains(t, out, "AY5yDeSWo21")
	assert.Empty(t, ta.clipboard)
}

func TestRun_Reveal(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed", Password: "pw", Reveal: true}, false)
	ta.unpack.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(vaultResult(), nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.stdout.String(), "AY5yDeSWo21")
}

func TestRun_CopyToClipboard(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed", Password: "pw", Copy: true}, false)
	ta.unpack.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(vaultResult(), nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, []string{referencePlain}, ta.clipboard)
}

func TestRun_ClipboardError(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed", Password: "pw", Copy: true}, false)
	ta.unpack.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(vaultResult(), nil)
	ta.app.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	err := ta.app.Run(context.Background())

	assert.ErrorContains(t, err, "copy to clipboard")
}

func TestRun_NoPasswordNonInteractive(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed"}, false)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrNoPassword)
}

func TestRun_WrongConfiguredPasswordIsNotRetried(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed", Password: "wrong"}, true)
	ta.unpack.EXPECT().
		Unpack(gomock.Any(), gomock.Any()).
		Return(models.UnpackResult{}, fmt.Errorf("error unpacking payload: %w", crypto.ErrAuthentication))

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

// ─────────────────────────────────────────────
// Prompt
// ─────────────────────────────────────────────

func TestRun_PromptRetriesAfterWrongPassword(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed"}, true)
	authErr := fmt.Errorf("error unpacking payload: %w", crypto.ErrAuthentication)

	gomock.InOrder(
		ta.prompter.EXPECT().PromptPassword(gomock.Any(), "").Return("wrong", nil),
		ta.unpack.EXPECT().
			Unpack(gomock.Any(), models.UnpackRequest{Payload: "packed", Password: "wrong"}).
			Return(models.UnpackResult{}, authErr),
		ta.prompter.EXPECT().PromptPassword(gomock.Any(), tui.HumanizeError(authErr)).Return("right", nil),
		ta.unpack.EXPECT().
			Unpack(gomock.Any(), models.UnpackRequest{Payload: "packed", Password: "right"}).
			Return(models.UnpackResult{Plaintext: "hello"}, nil),
	)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.stdout.String(), "hello")
}

func TestRun_PromptGivesUpAfterMaxAttempts(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed"}, true)

	ta.prompter.EXPECT().PromptPassword(gomock.Any(), gomock.Any()).Return("wrong", nil).Times(maxPasswordAttempts)
	ta.unpack.EXPECT().
		Unpack(gomock.Any(), gomock.Any()).
		Return(models.UnpackResult{}, crypto.ErrAuthentication).
		Times(maxPasswordAttempts)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestRun_PromptNotRetriedOnFormatError(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed"}, true)

	ta.prompter.EXPECT().PromptPassword(gomock.Any(), "").Return("pw", nil)
	ta.unpack.EXPECT().Unpack(gomock.Any(), gomock.Any()).Return(models.UnpackResult{}, crypto.ErrFormat)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, crypto.ErrFormat)
}

func TestRun_PromptQuit(t *testing.T) {
	ta := newTestApp(t, config.Input{Payload: "packed"}, true)
	ta.prompter.EXPECT().PromptPassword(gomock.Any(), "").Return("", tui.ErrUserQuit)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, tui.ErrUserQuit)
}

// ─────────────────────────────────────────────
// Payload sources
// ─────────────────────────────────────────────

func TestReadPayload(t *testing.T) {
	dir := t.TempDir()
	payloadFile := filepath.Join(dir, "payload.txt")
	require.NoError(t, os.WriteFile(payloadFile, []byte(referencePacked+"\n"), 0600))
	emptyFile := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(emptyFile, []byte("  \n"), 0600))

	tests := []struct {
		name    string
		input   config.Input
		stdin   string
		want    string
		wantErr error
	}{
		{name: "inline", input: config.Input{Payload: " packed "}, want: "packed"},
		{name: "file with trailing newline", input: config.Input{PayloadFile: payloadFile}, want: referencePacked},
		{name: "stdin", input: config.Input{PayloadFile: "-"}, stdin: referencePacked + "\r\n", want: referencePacked},
		{name: "empty file", input: config.Input{PayloadFile: emptyFile}, wantErr: ErrEmptyPayload},
		{name: "empty stdin", input: config.Input{PayloadFile: "-"}, wantErr: ErrEmptyPayload},
		{name: "no source", input: config.Input{}, wantErr: ErrNoPayloadSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, tt.input, false)
			ta.app.stdin = strings.NewReader(tt.stdin)

			got, err := ta.app.readPayload()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPayload_MissingFile(t *testing.T) {
	ta := newTestApp(t, config.Input{PayloadFile: filepath.Join(t.TempDir(), "missing")}, false)

	_, err := ta.app.readPayload()

	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestRun_VersionLocal(t *testing.T) {
	ta := newTestApp(t, config.Input{ShowVersion: true}, false)

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.stdout.String()
	assert.Contains(t, out, "Version: 1.0.0")
	assert.NotContains(t, out, "Server version")
}

func TestRun_VersionRemote(t *testing.T) {
	ta := newTestApp(t, config.Input{ShowVersion: true}, false)
	serverInfo := mock.NewMockServerInfoService(gomock.NewController(t))
	ta.app.services.ServerInfoService = serverInfo
	serverInfo.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.stdout.String(), "Server version: 2.0.0")
}

func TestRun_VersionRemoteUnavailable(t *testing.T) {
	ta := newTestApp(t, config.Input{ShowVersion: true}, false)
	serverInfo := mock.NewMockServerInfoService(gomock.NewController(t))
	ta.app.services.ServerInfoService = serverInfo
	serverInfo.EXPECT().GetServerVersion(gomock.Any()).Return("", service.ErrRemoteUnavailable)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.stdout.String(), "Server version: unavailable")
}

// ─────────────────────────────────────────────
// End to end with the local services
// ─────────────────────────────────────────────

func TestRun_LocalServicesReferencePayload(t *testing.T) {
	svcs, err := service.NewClientServices(config.App{
		Salt:          crypto.DefaultSalt,
		KDFIterations: crypto.DefaultIterations,
	}, nil, logger.Nop())
	require.NoError(t, err)

	ta := newTestApp(t, config.Input{Payload: referencePacked, Password: referencePassword, Copy: true}, false)
	ta.app.services = svcs

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, []string{referencePlain}, ta.clipboard)
	assert.Contains(t, ta.stdout.String(), "1 entry")
}
