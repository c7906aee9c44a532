// Package shared provides common utilities used across the codebase.
//
//nolint:revive // "shared" is an intentional package name for cross-cutting helpers.
package shared

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// IsNotFoundError checks if the error is a Google API 404 response.
// For the Sheets API this means the spreadsheet ID does not exist or has
// not been shared with the service account.
func IsNotFoundError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}

// IsPermissionError checks if the error is a Google API 403 response,
// typically a disabled API or a spreadsheet the service account cannot
// write to.
func IsPermissionError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusForbidden
	}
	return false
}

// IsAPIError checks if the error carries any Google API status code.
// Errors that fail this check are transport or credential problems rather
// than API responses.
func IsAPIError(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr)
}
