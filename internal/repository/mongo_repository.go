package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"next-target-mock/internal/models"
)

type MongoManpowerStore struct {
	col *mongo.Collection
}

func NewMongoManpowerStore(col *mongo.Collection) *MongoManpowerStore {
	return &MongoManpowerStore{col: col}
}

func (s *MongoManpowerStore) FindRawByPersonalID(ctx context.Context, personalID string) (models.Document, error) {
	var doc bson.D
	err := s.col.FindOne(ctx, bson.M{"personalId": personalID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return models.Document(doc), nil
}

func (s *MongoManpowerStore) FindByPersonalID(ctx context.Context, personalID string) (*models.Person, error) {
	var p models.Person
	err := s.col.FindOne(ctx, bson.M{"personalId": personalID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoManpowerStore) Insert(ctx context.Context, p *models.Person) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *MongoManpowerStore) InsertMany(ctx context.Context, people []models.Person) (int, error) {
	if len(people) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(people))
	for i := range people {
		if people[i].ID.IsZero() {
			people[i].ID = bson.NewObjectID()
		}
		docs = append(docs, people[i])
	}
	res, err := s.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return committedBeforeFailure(err), translateWriteError(err)
	}
	return len(res.InsertedIDs), nil
}

func (s *MongoManpowerStore) FindAllSortedByLastName(ctx context.Context) ([]models.Person, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	people := []models.Person{}
	if err := cur.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (s *MongoManpowerStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func windowFilter(low, high string) bson.M {
	return bson.M{"personalId": bson.M{
		"$gte":   low,
		"$lte":   high,
		"$regex": fmt.Sprintf("^[0-9]{%d}$", len(low)),
	}}
}

func (s *MongoManpowerStore) CountPersonalIDsInWindow(ctx context.Context, low, high string) (int64, error) {
	return s.col.CountDocuments(ctx, windowFilter(low, high))
}

func (s *MongoManpowerStore) PersonalIDsInWindow(ctx context.Context, low, high string) ([]string, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "personalId", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "personalId", Value: 1}})
	cur, err := s.col.Find(ctx, windowFilter(low, high), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		PersonalID string `bson:"personalId"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PersonalID)
	}
	return ids, nil
}

// committedBeforeFailure is how many documents an ordered insert wrote before
// err. The index of the first write error is that count; any other failure
// is counted as nothing written.
func committedBeforeFailure(err error) int {
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) && len(bwe.WriteErrors) > 0 {
		return bwe.WriteErrors[0].Index
	}
	return 0
}

func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Message: err.Error(), Err: err}
	}
	return err
}
