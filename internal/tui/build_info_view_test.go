// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"), "")

	assert.Contains(t, out, "Version: 1.2.3")
	assert.Contains(t, out, "Date: 2026-01-02")
	assert.Contains(t, out, "Commit: abc123")
	assert.NotContains(t, out, "Server version")
}

func TestRenderBuildInfo_NotAvailable(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("", "", ""), "")

	assert.Contains(t, out, "Version: N/A")
	assert.Contains(t, out, "Commit: N/A")
}

func TestRenderBuildInfo_ServerVersion(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.0.0", "", ""), "2.0.0")

	assert.Contains(t, out, "Server version: 2.0.0")
}
