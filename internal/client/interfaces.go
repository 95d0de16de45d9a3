// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the lifecycle contract of the command-line application.
type Client interface {
	// Run executes one unpack (or version query) and returns.
	Run(ctx context.Context) error
}

// PasswordPrompter asks the user for the vault password. errMsg explains
// why the previous attempt failed and is empty on the first call.
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, errMsg string) (string, error)
}
