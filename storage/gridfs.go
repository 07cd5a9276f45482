package storage

import (
	"context"
	"io"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStorage menyimpan foto di MongoDB GridFS
type GridFSStorage struct {
	db *mongo.Database
}

func NewMongoClient(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return client, nil
}

func NewGridFSStorage(client *mongo.Client, dbName string) *GridFSStorage {
	return &GridFSStorage{db: client.Database(dbName)}
}

func (s *GridFSStorage) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", err
	}

	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	if _, err := io.Copy(stream, r); err != nil {
		return "", err
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

func (s *GridFSStorage) Download(ctx context.Context, objectID string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(objectID)
	if err != nil {
		return nil, err
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}

func (s *GridFSStorage) Delete(ctx context.Context, objectID string) error {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(objectID)
	if err != nil {
		return err
	}

	return bucket.Delete(objID)
}
