package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextInvoiceNumber reserves the next invoice sequence from the counters
// collection. The counter only moves forward, so a retried checkout gets a
// fresh number and can never collide with an earlier attempt; the unique
// index on invoice_number backs this at the store level.
func (s *MongoStore) NextInvoiceNumber(ctx context.Context) (string, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res := s.counters().FindOneAndUpdate(ctx,
		bson.M{"_id": "invoice"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%06d", doc.Seq), nil
}
