package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/photocards/pkg/validation"
)

const (
	usersCollection = "users"
	cardsCollection = "cards"

	codeNamespaceExists         = 48
	codeDocumentValidationError = 121
)

func boundedString(min, max int) bson.M {
	return bson.M{"bsonType": "string", "minLength": min, "maxLength": max}
}

func urlString() bson.M {
	return bson.M{"bsonType": "string", "pattern": validation.URLPattern.String()}
}

func usersSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "about", "avatar", "email", "password"},
		"properties": bson.M{
			"name":     boundedString(2, 30),
			"about":    boundedString(2, 30),
			"avatar":   urlString(),
			"email":    bson.M{"bsonType": "string"},
			"password": bson.M{"bsonType": "string"},
		},
	}}
}

func cardsSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "link", "owner", "likes", "createdAt"},
		"properties": bson.M{
			"name":      boundedString(2, 30),
			"link":      urlString(),
			"owner":     bson.M{"bsonType": "objectId"},
			"likes":     bson.M{"bsonType": "array", "uniqueItems": true, "items": bson.M{"bsonType": "objectId"}},
			"createdAt": bson.M{"bsonType": "date"},
		},
	}}
}

// EnsureSchema creates the users and cards collections with their validators
// (or updates the validators of existing ones) and the unique email index.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	if err := ensureCollection(ctx, db, usersCollection, usersSchema()); err != nil {
		return err
	}
	if err := ensureCollection(ctx, db, cardsCollection, cardsSchema()); err != nil {
		return err
	}
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	err := db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
		return fmt.Errorf("create %s: %w", name, err)
	}
	cmd := bson.D{{Key: "collMod", Value: name}, {Key: "validator", Value: validator}}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("update %s validator: %w", name, err)
	}
	return nil
}

func isValidationError(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeDocumentValidationError)
}
