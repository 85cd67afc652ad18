package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

const tokenCollection = "session_tokens"

// Mongo keeps the token in one document of the session_tokens collection,
// keyed by _id.
type Mongo struct {
	coll *mongo.Collection
	key  string
	now  func() time.Time
}

type mongoToken struct {
	Key       string `bson:"_id"`
	Token     string `bson:"token"`
	UpdatedAt int64  `bson:"updated_at"`
}

// NewMongo stores the token of slot key in db.
func NewMongo(db *mongo.Database, key string) *Mongo {
	return &Mongo{coll: db.Collection(tokenCollection), key: key, now: time.Now}
}

func (m *Mongo) Load(ctx context.Context) (string, error) {
	var doc mongoToken
	if err := m.coll.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrNoToken
		}
		return "", fmt.Errorf("find token: %w", err)
	}
	if doc.Token == "" {
		return "", domain.ErrNoToken
	}
	return doc.Token, nil
}

func (m *Mongo) Save(ctx context.Context, token string) error {
	update := bson.M{"$set": bson.M{"token": token, "updated_at": m.now().Unix()}}
	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": m.key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (m *Mongo) Clear(ctx context.Context) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": m.key}); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Ping reports whether the deployment is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.coll.Database().Client().Ping(ctx, nil)
}
