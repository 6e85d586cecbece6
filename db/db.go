package db

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the MongoDB client and the platform's five collections. It is
// constructed once in main and handed to the handler packages; its lifetime
// follows the process.
type Store struct {
	client *mongo.Client

	Users        *mongo.Collection
	Credentials  *mongo.Collection
	Events       *mongo.Collection
	Tickets      *mongo.Collection
	ContactForms *mongo.Collection
}

// Connect dials MongoDB and binds the collections in dbName.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	database := client.Database(dbName)
	return &Store{
		client:       client,
		Users:        database.Collection("Users"),
		Credentials:  database.Collection("Credentials"),
		Events:       database.Collection("Events"),
		Tickets:      database.Collection("Tickets"),
		ContactForms: database.Collection("ContactUs"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates unique indexes on the natural keys so that a lost
// check-then-insert race surfaces as a duplicate-key error instead of a
// silent duplicate.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := s.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "UserID", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "Username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "Email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}
	_, err = s.Credentials.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "UserID", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "Username", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}
	_, err = s.Events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "EventID", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "EventName", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}
	_, err = s.ContactForms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "FormID", Value: 1}}, Options: unique,
	})
	return err
}

// The gateway does not distinguish "not found" from a storage error: both come
// back as a nil document or empty list, and the handlers re-interpret. Storage
// errors are logged here so they are not lost entirely.

func (s *Store) findOne(ctx context.Context, coll *mongo.Collection, filter bson.M) bson.M {
	var doc bson.M
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("findOne %s %v: %v", coll.Name(), filter, err)
		}
		return nil
	}
	return doc
}

func (s *Store) findMany(ctx context.Context, coll *mongo.Collection, filter bson.M) []bson.M {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		log.Printf("find %s %v: %v", coll.Name(), filter, err)
		return nil
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("cursor %s: %v", coll.Name(), err)
		return nil
	}
	return docs
}

func (s *Store) insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) bool {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil || result.InsertedID == nil {
		log.Printf("insert %s: %v", coll.Name(), err)
		return false
	}
	return true
}

// updateOne applies doc as a $set patch (partial overwrite of the supplied
// fields, no deep merge) and re-fetches by the same filter. The re-fetch only
// proves the filter still matches something, not that the patch took.
func (s *Store) updateOne(ctx context.Context, coll *mongo.Collection, filter bson.M, doc interface{}) bson.M {
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": doc})
	if err != nil {
		log.Printf("update %s %v: %v", coll.Name(), filter, err)
		return nil
	}
	log.Printf("%d document(s) matched in %s", result.MatchedCount, coll.Name())
	return s.findOne(ctx, coll, filter)
}

// deleteOne snapshots the document, deletes by filter, and confirms via
// before/after counts. The snapshot is returned only when exactly one document
// went away; a failed delete and a multi-delete both come back nil.
func (s *Store) deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) bson.M {
	countPrev, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("count %s: %v", coll.Name(), err)
		return nil
	}
	doc := s.findOne(ctx, coll, filter)
	if _, err := coll.DeleteOne(ctx, filter); err != nil {
		log.Printf("delete %s %v: %v", coll.Name(), filter, err)
		return nil
	}
	countNow, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("count %s: %v", coll.Name(), err)
		return nil
	}
	diff := countPrev - countNow
	word := "document"
	if diff != 1 {
		word = "documents"
	}
	log.Printf("%d %s deleted from %s", diff, word, coll.Name())
	if diff == 1 {
		return doc
	}
	return nil
}
