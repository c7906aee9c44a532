package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/communitylabs/doorman/internal/domain"
	"github.com/communitylabs/doorman/internal/shared"
)

// headerRange is the cell probed for an existing header row. The range
// carries no sheet name, so it addresses the first sheet of the document.
const headerRange = "A1"

// headerRow is the fixed first row of the sheet, written at most once.
var headerRow = []interface{}{"Full Name", "Email", "Platform User ID", "Registration Date"}

// SheetsRecorder implements Recorder on top of a Google Sheet.
type SheetsRecorder struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsRecorder builds a recorder from a service-account key file.
// The key needs read/write access to the spreadsheet plus restricted
// Drive file access, matching how the sheet is shared with the account.
func NewSheetsRecorder(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsRecorder, error) {
	key, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(key, sheets.SpreadsheetsScope, sheets.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return NewSheetsRecorderWithService(svc, spreadsheetID), nil
}

// NewSheetsRecorderWithService builds a recorder around an existing Sheets
// service. Used by tests and callers that manage credentials themselves.
func NewSheetsRecorderWithService(svc *sheets.Service, spreadsheetID string) *SheetsRecorder {
	return &SheetsRecorder{svc: svc, spreadsheetID: spreadsheetID}
}

// Append writes one registration row, ensuring the header row exists first.
// Every failure category is logged here with distinguishing detail; the
// returned error only tells the caller that the write did not happen.
func (r *SheetsRecorder) Append(ctx context.Context, rec *domain.RegistrationRecord) error {
	if err := r.ensureHeader(ctx); err != nil {
		r.logFailure("ensure header row", err)
		return fmt.Errorf("ensure header row: %w", err)
	}

	row := []interface{}{rec.Name, rec.Email, rec.UserID, rec.FormattedTimestamp()}
	if err := r.appendRow(ctx, row); err != nil {
		r.logFailure("append registration row", err)
		return fmt.Errorf("append registration row: %w", err)
	}

	slog.Info("Registration saved to sheet", "name", rec.Name, "user_id", rec.UserID)
	return nil
}

// ensureHeader checks the header cell and appends the fixed header row if
// it is empty. The check and the append are not atomic against concurrent
// writers; with a single bot process writing to the sheet this window is
// accepted rather than locked around. A header left without data rows by
// a crash is tolerated: the next call sees the header and skips it.
func (r *SheetsRecorder) ensureHeader(ctx context.Context) error {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header cell: %w", err)
	}

	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	if err := r.appendRow(ctx, headerRow); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	slog.Info("Header row added to sheet", "spreadsheet_id", r.spreadsheetID)
	return nil
}

func (r *SheetsRecorder) appendRow(ctx context.Context, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, headerRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// Describe fetches the spreadsheet title, proving the configured ID is
// reachable with the supplied credentials.
func (r *SheetsRecorder) Describe(ctx context.Context) (string, error) {
	doc, err := r.svc.Spreadsheets.Get(r.spreadsheetID).
		Fields("properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("open spreadsheet %s: %w", r.spreadsheetID, err)
	}
	if doc.Properties == nil {
		return "", nil
	}
	return doc.Properties.Title, nil
}

// Ping verifies store connectivity.
func (r *SheetsRecorder) Ping(ctx context.Context) error {
	_, err := r.Describe(ctx)
	return err
}

func (r *SheetsRecorder) logFailure(op string, err error) {
	switch {
	case shared.IsNotFoundError(err):
		slog.Error("Spreadsheet not found; check the ID and that the sheet is shared with the service account",
			"op", op, "spreadsheet_id", r.spreadsheetID, "error", err)
	case shared.IsPermissionError(err):
		slog.Error("Google API refused access; check that the Sheets and Drive APIs are enabled",
			"op", op, "spreadsheet_id", r.spreadsheetID, "error", err)
	case shared.IsAPIError(err):
		slog.Error("Google API error while saving registration",
			"op", op, "spreadsheet_id", r.spreadsheetID, "error", err)
	default:
		slog.Error("Unexpected error while saving registration",
			"op", op, "spreadsheet_id", r.spreadsheetID, "error", err)
	}
}
