package grid

import (
	"context"
	"log"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/submissions"
)

var liveRows = NewRowSet()

// Start bulk-loads the current submissions into the live row set and keeps it
// reconciled against the change stream. The bulk load can race the first
// notifications; Apply's duplicate-add guard makes the overlap harmless.
func Start(ctx context.Context) error {
	subs, err := submissions.GetAll(ctx)
	if err != nil {
		return err
	}
	liveRows.Reload(subs)

	go func() {
		if err := Watch(ctx, liveRows); err != nil && ctx.Err() == nil {
			log.Printf("[grid] change stream stopped: %v", err)
		}
	}()

	log.Printf("[grid] live row set ready rows=%d", liveRows.Len())
	return nil
}

// Rows returns the current materialized rows.
func Rows() []models.FlatRow {
	return liveRows.Rows()
}
