package grid

import (
	DB "Backend-ECW-B2S/src/database"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-ECW-B2S/src/models"
)

// changeDoc is the slice of a change-stream document we care about. Update
// events carry the full post-image via UpdateLookup so the reconciler can
// re-flatten the one affected submission.
type changeDoc struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument *models.Submission `bson:"fullDocument"`
}

func (d changeDoc) event() (ChangeEvent, bool) {
	key := d.DocumentKey.ID.Hex()
	switch d.OperationType {
	case "insert":
		return ChangeEvent{Type: Added, Key: key, Submission: d.FullDocument}, d.FullDocument != nil
	case "update", "replace":
		return ChangeEvent{Type: Changed, Key: key, Submission: d.FullDocument}, d.FullDocument != nil
	case "delete":
		return ChangeEvent{Type: Removed, Key: key}, true
	}
	return ChangeEvent{}, false
}

// Watch tails the submissions change stream and applies each notification to
// the row set until ctx is cancelled or the stream dies. Events that cannot
// be decoded are logged and skipped — the view stays stale until the next
// notification, nothing is retried.
func Watch(ctx context.Context, set *RowSet) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := DB.SubmissionCollection.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return fmt.Errorf("watch submissions: %w", err)
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		var doc changeDoc
		if err := stream.Decode(&doc); err != nil {
			log.Printf("[grid] decode change event: %v", err)
			continue
		}
		if ev, ok := doc.event(); ok {
			set.Apply(ev)
		}
	}
	return stream.Err()
}
