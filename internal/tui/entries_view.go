package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/vault-unpacker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	maskedSecret = "********"

	weakEntropyBits   = 50
	strongEntropyBits = 70
)

// RenderResult renders an unpack result. Vault entries are shown as a table
// with secrets masked unless reveal is set; any other plaintext is printed
// as is.
func RenderResult(result models.UnpackResult, reveal bool) string {
	if !result.IsVault() {
		return renderPage("PLAINTEXT", result.Plaintext, "")
	}

	if len(result.Entries) == 0 {
		return renderPage("VAULT", "Vault is empty", "")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "LOGIN", "PASSWORD", "STRENGTH", "AUTH CODE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, entry := range result.Entries {
		t.Row(
			strconv.Itoa(i+1),
			valueOrDash(entry.Login()),
			secret(entry.Password, reveal),
			passwordStrength(entry.Password),
			secret(entry.AuthCode, reveal),
		)
	}

	summary := fmt.Sprintf("%d entries", len(result.Entries))
	if len(result.Entries) == 1 {
		summary = "1 entry"
	}

	hint := ""
	if !reveal {
		hint = "run with -reveal to show secrets"
	}

	return renderPage("VAULT", t.Render()+"\n"+summary, hint)
}

func secret(v string, reveal bool) string {
	if v == "" {
		return "-"
	}
	if reveal {
		return v
	}
	return maskedSecret
}

// passwordStrength labels a password by its entropy in bits.
func passwordStrength(password string) string {
	if password == "" {
		return "-"
	}

	bits := passwordvalidator.GetEntropy(password)

	label := "strong"
	switch {
	case bits < weakEntropyBits:
		label = "weak"
	case bits < strongEntropyBits:
		label = "fair"
	}

	return fmt.Sprintf("%s (%.0f bits)", label, bits)
}
