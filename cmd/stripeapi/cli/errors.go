package cli

import (
	"errors"

	"github.com/fatih/color"
)

var errNoIDs = errors.New("no IDs given, pass them as arguments or with --file")

// logError reports an error for a single ID of a batch to the progress output
// of the app without stopping the batch.
func (a *app) logError(id string, err error) {
	color.New(color.FgRed).Fprintf(a.progress, "%s: %s\n", id, err)
	a.log.WithError(err).WithField("id", id).Debug("retrieve failed")
}
