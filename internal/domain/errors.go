package domain

import "errors"

var (
	// ErrNotConfigured is returned when a guild has no stored configuration
	// or lacks a spreadsheet to read from.
	ErrNotConfigured = errors.New("bot hasn't been configured for this workspace yet")

	// ErrSheetsUnavailable wraps any failure of the live spreadsheet check.
	ErrSheetsUnavailable = errors.New("failed to connect to Google Sheets")

	// ErrMissingSetupArgs is returned when setup lacks a spreadsheet, channel or group.
	ErrMissingSetupArgs = errors.New("spreadsheet ID, channel and group are required")
)
