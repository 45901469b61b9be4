package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/matsen/quickstatus/internal/expiration"
	"github.com/matsen/quickstatus/internal/status"
)

// Styles for human-readable output.
var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// stdout and stderr are swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Fprintf(stdout, format+"\n", args...)
}

// verboseLog prints to stderr only when --verbose is set.
func verboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(stderr, "[verbose] "+format+"\n", args...)
	}
}

// warn prints a non-fatal problem to stderr.
func warn(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "Warning: "+format+"\n", args...)
}

// ErrorResponse is the JSON error output.
type ErrorResponse struct {
	Error       string   `json:"error"`
	ExitCode    int      `json:"exit_code"`
	ValidValues []string `json:"valid_statuses,omitempty"`
}

// printError writes err to stderr, as JSON with --json.
// Unknown status names also list the valid ones.
func printError(err error) {
	var unknown *status.UnknownStatusError
	isUnknown := errors.As(err, &unknown)

	if jsonOutput {
		resp := ErrorResponse{Error: err.Error(), ExitCode: exitCodeFor(err)}
		if isUnknown {
			resp.ValidValues = unknown.Valid
		}
		enc := json.NewEncoder(stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resp)
		return
	}

	if isUnknown {
		fmt.Fprintf(stderr, "%s %s is not a valid status. Valid statuses are:\n", errorStyle.Render("Error:"), unknown.Name)
		for _, name := range unknown.Valid {
			fmt.Fprintf(stderr, "  %s\n", name)
		}
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", errorStyle.Render("Error:"), err)
}

// formatStatus renders a status as "<emoji> <text>", or a placeholder when empty.
func formatStatus(s status.Status) string {
	if str := s.String(); str != "" {
		return nameStyle.Render(str)
	}
	return faintStyle.Render("(no status)")
}

// formatUntil renders " until <timestamp>" or "" for statuses that do not expire.
func formatUntil(e expiration.Expiration) string {
	if e.IsZero() {
		return ""
	}
	return faintStyle.Render(" until " + e.String())
}

// formatLifetime renders a canned status's default lifetime for tables.
func formatLifetime(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dm", minutes)
}

// formatDisturb renders whether a status snoozes notifications.
func formatDisturb(s status.Status) string {
	if s.WantsDND() {
		return "dnd"
	}
	return "-"
}
