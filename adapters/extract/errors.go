package extract

import (
	stderrors "errors"
	"fmt"

	"github.com/atreyakamat/VistaraBI-sub002/internal/errors"
)

// ErrNoSpreadsheetContent signals that the input carries no ODS-style
// spreadsheet model. It is not a failure: callers fall back to the generic
// markup extractor.
var ErrNoSpreadsheetContent = stderrors.New("no spreadsheet content")

// unreadable marks input that cannot be opened or decoded as bytes/text.
func unreadable(err error, format string) error {
	return errors.WithCode(errors.CodeUnreadableInput, err,
		fmt.Sprintf("unable to read %s input", format))
}

// malformed marks content that decodes as bytes but violates the format's
// own grammar. The underlying parser message stays in the chain.
func malformed(err error, format string) error {
	return errors.WithCode(errors.CodeMalformedContent, err,
		fmt.Sprintf("invalid %s content", format))
}
