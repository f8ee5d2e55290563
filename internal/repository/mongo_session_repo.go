package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

type mongoSessionRepo struct {
	collection *mongo.Collection
}

// NewMongoSessionRepo creates a session repository on the sessions
// collection with its listing indexes
func NewMongoSessionRepo(ctx context.Context, db *mongo.Database) (SessionRepo, error) {
	repo := &mongoSessionRepo{
		collection: db.Collection("sessions"),
	}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *mongoSessionRepo) ensureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ts", Value: 1}}},
		{
			Keys:    bson.D{{Key: "feedback.createdAt", Value: -1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create session indexes: %w", err)
	}
	return nil
}

func (r *mongoSessionRepo) Create(ctx context.Context, session *model.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSessionExists
	}
	return err
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepo) SetFeedback(ctx context.Context, id string, feedback *model.Feedback) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *mongoSessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*model.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *mongoSessionRepo) ListWithFeedback(ctx context.Context, page, perPage int) (*model.FeedbackPage, error) {
	page, perPage = NormalizePage(page, perPage)
	filter := bson.M{"feedback": bson.M{"$ne": nil}}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "ts", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []*model.Session{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return &model.FeedbackPage{Rows: rows, Total: total, Page: page, PerPage: perPage}, nil
}

// Close is a no-op; the client is owned by the caller
func (r *mongoSessionRepo) Close(ctx context.Context) error {
	return nil
}
