// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/vault-unpacker/models"
)

// RenderBuildInfo renders the build information of the unpacker and, when
// serverVersion is not empty, the version reported by the remote server.
func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: vault-unpacker\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if serverVersion != "" {
		b.WriteString("\n")
		b.WriteString("Server version: ")
		b.WriteString(serverVersion)
	}

	return renderPage("ABOUT", b.String(), "")
}
