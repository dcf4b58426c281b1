package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoConnectTimeout = 10 * time.Second
	mongoPingTimeout    = 2 * time.Second
)

// MongoStore история в MongoDB, клиент один на процесс
type MongoStore struct {
	client      *mongo.Client
	submissions *mongo.Collection
	videos      *mongo.Collection
	bulk        *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("mongodb connection uri is empty")
	}

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancelPing()

	if err = client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	utils.Log.WithField("database", database).Info("Connected to MongoDB")

	db := client.Database(database)

	return &MongoStore{
		client:      client,
		submissions: db.Collection(SubmittedURLsCollection),
		videos:      db.Collection(VideosCollection),
		bulk:        db.Collection(BulkDownloadsCollection),
	}, nil
}

func (s *MongoStore) InsertSubmission(ctx context.Context, req *SubmittedRequest) error {
	if _, err := s.submissions.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

func (s *MongoStore) UpdateSubmissionStatus(ctx context.Context, url string, update StatusUpdate) error {
	filter := bson.M{
		"url":    url,
		"status": bson.M{"$nin": terminalStatuses},
	}

	set := bson.M{
		"status":        update.Status,
		"lastUpdatedAt": update.At,
	}
	if update.Error != "" {
		set["error"] = update.Error
	}
	if update.Details != nil {
		set["details"] = update.Details
	}

	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	err := s.submissions.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}

	return nil
}

func (s *MongoStore) UpsertVideo(ctx context.Context, v *VideoRecord) error {
	update := bson.M{
		"$set": bson.M{
			"author":         v.Author,
			"nickname":       v.Nickname,
			"description":    v.Description,
			"stats":          v.Stats,
			"coverUrl":       v.CoverURL,
			"dynamicCover":   v.DynamicCover,
			"duration":       v.Duration,
			"directVideoUrl": v.DirectVideoURL,
			"createTime":     v.CreateTime,
			"lastUpdatedAt":  v.LastUpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": v.CreatedAt,
		},
	}

	_, err := s.videos.UpdateOne(ctx, bson.M{"videoId": v.VideoID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert video %s: %w", v.VideoID, err)
	}

	return nil
}

func (s *MongoStore) InsertBulkRequest(ctx context.Context, req *BulkRequest) error {
	if _, err := s.bulk.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("insert bulk request %s: %w", req.ID, err)
	}

	return nil
}

func (s *MongoStore) FindBulkRequest(ctx context.Context, id string) (*BulkRequest, error) {
	var req BulkRequest

	err := s.bulk.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find bulk request %s: %w", id, err)
	}

	return &req, nil
}

func (s *MongoStore) ListVideos(ctx context.Context) ([]VideoRecord, error) {
	videos := make([]VideoRecord, 0)
	err := findAll(ctx, s.videos, bson.M{}, "lastUpdatedAt", &videos)

	if err != nil {
		return nil, err
	}

	return nonNil(videos), nil
}

func (s *MongoStore) ListSubmissions(ctx context.Context) ([]SubmittedRequest, error) {
	submissions := make([]SubmittedRequest, 0)
	err := findAll(ctx, s.submissions, bson.M{"status": bson.M{"$ne": StatusSuccess}}, "lastUpdatedAt", &submissions)

	if err != nil {
		return nil, err
	}

	return nonNil(submissions), nil
}

func (s *MongoStore) ListBulkRequests(ctx context.Context) ([]BulkRequest, error) {
	requests := make([]BulkRequest, 0)
	err := findAll(ctx, s.bulk, bson.M{}, "updatedAt", &requests)

	if err != nil {
		return nil, err
	}

	return nonNil(requests), nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect MongoDB: %w", err)
	}

	utils.Log.Info("Disconnected from MongoDB")

	return nil
}

// findAll сортировка по убыванию sortKey
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sortKey string, out *[]T) error {
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", coll.Name(), err)
	}

	if err = cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}

	return nil
}
