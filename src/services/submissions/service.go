package submissions

import (
	DB "Backend-ECW-B2S/src/database"
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-ECW-B2S/src/models"
)

var validate = validator.New()

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrActivityNotFound   = errors.New("activity not found")
)

// Create appends a submission under a store-assigned id. The form may not
// submit an empty batch: at least one activity is required.
func Create(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	if err := validate.Struct(submission); err != nil {
		return nil, err
	}

	submission.ID = primitive.NewObjectID()
	if submission.SavedAt == "" {
		submission.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := DB.SubmissionCollection.InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}

	// sync inserted id in case the driver assigned a new one
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		submission.ID = oid
	}

	log.Printf("[submissions] inserted id=%s directorate=%q activities=%d",
		submission.ID.Hex(), submission.Directorate, len(submission.Activities))

	return submission, nil
}

// GetByID retrieves a submission by its ID.
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var submission models.Submission
	err := DB.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	return &submission, nil
}

// GetAll returns every submission keyed by its hex id, the mapping the
// flattener and the grid's full reload consume.
func GetAll(ctx context.Context) (map[string]models.Submission, error) {
	cursor, err := DB.SubmissionCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Submission
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	subs := make(map[string]models.Submission, len(list))
	for _, sub := range list {
		subs[sub.ID.Hex()] = sub
	}
	return subs, nil
}

// GetLatest returns the last N submissions by save time, newest first. Backs
// the "sent forms" list on the collection page.
func GetLatest(ctx context.Context, limit int64) ([]models.Submission, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "savedAt", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := DB.SubmissionCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateActivity applies an inline grid edit: one-shot read, patch the
// activity at index (and the parent's directorate/volunteer, which live on
// the submission), then write the whole document back. Last write wins — no
// version check, concurrent editors race at the storage layer.
func UpdateActivity(ctx context.Context, id primitive.ObjectID, index int, row models.FlatRow) (*models.Submission, error) {
	sub, err := GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sub.Activities) {
		return nil, ErrActivityNotFound
	}

	sub.Directorate = row.Directorate
	sub.VolunteerName = row.VolunteerName

	act := &sub.Activities[index]
	act.ActivityDate = row.ActivityDate
	act.ActivityType = row.ActivityType
	act.DistrictArea = row.DistrictArea
	for _, f := range models.CountFields {
		*f.Field(act) = *f.Row(&row)
	}

	if err := replace(ctx, id, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteActivity removes one activity from a submission. The last remaining
// activity cannot be spliced out on its own — deleting it deletes the whole
// submission, so a persisted submission never carries an empty batch.
func DeleteActivity(ctx context.Context, id primitive.ObjectID, index int) error {
	sub, err := GetByID(ctx, id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sub.Activities) {
		return ErrActivityNotFound
	}

	if len(sub.Activities) <= 1 {
		return Delete(ctx, id)
	}

	sub.Activities = append(sub.Activities[:index], sub.Activities[index+1:]...)
	return replace(ctx, id, sub)
}

// Delete removes a submission by its ID.
func Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := DB.SubmissionCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func replace(ctx context.Context, id primitive.ObjectID, sub *models.Submission) error {
	result, err := DB.SubmissionCollection.ReplaceOne(ctx, bson.M{"_id": id}, sub)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
