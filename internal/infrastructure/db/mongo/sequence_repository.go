package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargolink/logistics-api/internal/core/ports"
)

const countersCollection = "counters"

// SequenceRepository backs the identifier minter with one counter document
// per entity kind. The $inc upsert is atomic on the server, so concurrent
// Next calls for the same kind always observe distinct values.
type SequenceRepository struct {
	coll *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{coll: db.Collection(countersCollection)}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (r *SequenceRepository) Next(ctx context.Context, kind ports.EntityKind) (int64, error) {
	var doc counterDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": string(kind)},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence for %s: %w", kind, err)
	}
	return doc.Seq, nil
}
