package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
)

const (
	videoCollection   = "videos"
	counterCollection = "counters"
	seqCounterID      = "video_seq"
)

// MongoStore satisfies the same contract as FileStore for deployments that
// outgrow the single-document store. Uniqueness rides on the _id index;
// insertion order is a counter document bumped atomically per insert.
type MongoStore struct {
	dbName       string
	queryTimeout time.Duration
	client       *mongo.Client
}

func ConnectMongo(cfg Config) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	s := &MongoStore{
		client:       client,
		dbName:       cfg.DBName,
		queryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	coll := s.collection()
	_, err = coll.Indexes().CreateOne(qCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(videoCollection)
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var video model.Video
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &video, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	cursor, err := s.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := make([]model.Video, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}

	return videos, nil
}

func (s *MongoStore) Insert(ctx context.Context, video *model.Video) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	seq, err := s.nextSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: allocate sequence: %v", entity.ErrStoreDivergence, err)
	}

	stored := *video
	stored.Seq = seq

	_, err = s.collection().InsertOne(ctx, &stored)
	if mongo.IsDuplicateKeyError(err) {
		return nil, entity.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (s *MongoStore) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// nextSeq bumps the insertion counter and returns the new value.
func (s *MongoStore) nextSeq(ctx context.Context) (int64, error) {
	coll := s.client.Database(s.dbName).Collection(counterCollection)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": seqCounterID},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Value, nil
}

func (s *MongoStore) Stop() error {
	return s.client.Disconnect(context.Background())
}
