package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danuarta/newswatch/internal/types"
)

// MongoStore writes articles to a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	count      int
	logger     *slog.Logger
}

// NewMongoStore creates a new MongoDB export backend.
func NewMongoStore(uri, database, collection string, logger *slog.Logger) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
		logger:     logger.With("component", "mongo_store"),
	}, nil
}

func (s *MongoStore) Name() string { return "mongodb" }

func (s *MongoStore) Store(articles []*types.Article) error {
	docs := make([]any, len(articles))
	for i, a := range articles {
		docs[i] = map[string]any{
			"title":        a.Title,
			"publish_date": a.PublishDate,
			"author":       a.Author,
			"content":      a.Content,
			"keyword":      a.Keyword,
			"category":     a.Category,
			"source":       a.Source,
			"link":         a.Link,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}

	s.count += len(articles)
	s.logger.Debug("articles stored in mongodb", "count", len(articles), "total", s.count)
	return nil
}

func (s *MongoStore) Close() error {
	s.logger.Info("mongodb store closing", "total_articles", s.count)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
