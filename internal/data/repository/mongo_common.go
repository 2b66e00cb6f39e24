package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted matches documents without a deleted_at timestamp
var notDeleted = bson.M{"deleted_at": nil}

func withNotDeleted(filter bson.M) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = v
	}
	for k, v := range notDeleted {
		out[k] = v
	}
	return out
}

// findOne decodes a single document into T. Missing documents give (nil, nil).
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*T
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
