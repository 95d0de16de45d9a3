package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/vault-unpacker/internal/config"
	"github.com/MKhiriev/vault-unpacker/internal/crypto"
	"github.com/MKhiriev/vault-unpacker/internal/logger"
	"github.com/MKhiriev/vault-unpacker/internal/service"
	"github.com/MKhiriev/vault-unpacker/internal/tui"
	"github.com/MKhiriev/vault-unpacker/internal/validators"
	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

const (
	stdinPayloadFile    = "-"
	maxPasswordAttempts = 3
)

var _ Client = (*App)(nil)

type App struct {
	cfg       config.ClientConfig
	services  *service.ClientServices
	prompter  PasswordPrompter
	buildInfo models.AppBuildInfo

	stdin           io.Reader
	stdout          io.Writer
	interactive     bool
	copyToClipboard func(string) error

	logger *logger.Logger
}

// NewApp wires the unpacker runtime to the process stdin and stdout. The
// password prompt is only offered when stdin is a terminal that is not also
// the payload source.
func NewApp(cfg config.ClientConfig, services *service.ClientServices, prompter PasswordPrompter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.UnpackService == nil {
		return nil, ErrNoServices
	}

	fd := os.Stdin.Fd()
	interactive := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) &&
		cfg.Input.PayloadFile != stdinPayloadFile

	return &App{
		cfg:             cfg,
		services:        services,
		prompter:        prompter,
		buildInfo:       buildInfo,
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		interactive:     interactive && prompter != nil,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}, nil
}

// Run prints the build information when asked to, otherwise unpacks the
// configured payload and prints the result.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Input.ShowVersion {
		return a.printVersion(ctx)
	}

	payload, err := a.readPayload()
	if err != nil {
		return err
	}

	result, err := a.unpack(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, tui.RenderResult(result, a.cfg.Input.Reveal))

	if a.cfg.Input.Copy {
		if err := a.copyToClipboard(result.Plaintext); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Info().Msg("plaintext copied to clipboard")
	}

	return nil
}

// unpack opens payload, prompting for the password when none is configured.
// A wrong prompted password is asked for again up to maxPasswordAttempts
// times; a wrong configured password fails immediately.
func (a *App) unpack(ctx context.Context, payload string) (models.UnpackResult, error) {
	password := a.cfg.Input.Password
	prompted := false
	errMsg := ""

	for attempt := 1; ; attempt++ {
		if password == "" {
			if !a.interactive {
				return models.UnpackResult{}, ErrNoPassword
			}

			var err error
			password, err = a.prompter.PromptPassword(ctx, errMsg)
			if err != nil {
				return models.UnpackResult{}, err
			}
			prompted = true
		}

		result, err := a.services.UnpackService.Unpack(ctx, models.UnpackRequest{
			Payload:  payload,
			Password: password,
		})
		if err == nil {
			a.logger.Info().Int("attempt", attempt).Bool("vault", result.IsVault()).Msg("payload unpacked")
			return result, nil
		}

		if !prompted || !errors.Is(err, crypto.ErrAuthentication) {
			return models.UnpackResult{}, err
		}
		if attempt >= maxPasswordAttempts {
			return models.UnpackResult{}, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}

		a.logger.Warn().Int("attempt", attempt).Msg("authentication failed, prompting again")
		errMsg = tui.HumanizeError(err)
		password = ""
	}
}

func (a *App) readPayload() (string, error) {
	input := a.cfg.Input

	var payload string
	switch {
	case input.Payload != "":
		payload = input.Payload
	case input.PayloadFile == stdinPayloadFile:
		data, err := readLimited(a.stdin)
		if err != nil {
			return "", fmt.Errorf("error reading payload from stdin: %w", err)
		}
		payload = string(data)
	case input.PayloadFile != "":
		f, err := os.Open(input.PayloadFile)
		if err != nil {
			return "", fmt.Errorf("error opening payload file: %w", err)
		}
		defer f.Close()

		data, err := readLimited(f)
		if err != nil {
			return "", fmt.Errorf("error reading payload file: %w", err)
		}
		payload = string(data)
	default:
		return "", ErrNoPayloadSource
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrEmptyPayload
	}

	return payload, nil
}

// readLimited reads one byte past validators.MaxPayloadSize so that an
// oversized payload is still reported by validation.
func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, validators.MaxPayloadSize+1))
}

func (a *App) printVersion(ctx context.Context) error {
	serverVersion := ""
	if a.services.ServerInfoService != nil {
		v, err := a.services.ServerInfoService.GetServerVersion(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("failed to get server version")
			serverVersion = "unavailable (" + tui.HumanizeError(err) + ")"
		} else {
			serverVersion = v
		}
	}

	_, err := fmt.Fprintln(a.stdout, tui.RenderBuildInfo(a.buildInfo, serverVersion))
	return err
}
