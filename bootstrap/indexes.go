package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureManpowerIndexes creates the unique personalId index the API relies
// on for duplicate detection, plus the lastName index used for listing.
func EnsureManpowerIndexes(ctx context.Context, col *mongo.Collection) error {
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "personalId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("personalId_1"),
		},
		{
			Keys:    bson.D{{Key: "lastName", Value: 1}},
			Options: options.Index().SetName("lastName_1"),
		},
	})
	return errors.Wrap(err, "ensure manpower indexes")
}
