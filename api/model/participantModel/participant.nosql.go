package participantmodel

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores participants in a single MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

var _ IParticipantRepository = (*MongoRepository)(nil)

func NewMongoRepository(db *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection(collection),
	}
}

func (r *MongoRepository) List(ctx context.Context, filter ParticipantFilter) ([]*Participant, error) {
	cursor, err := r.collection.Find(ctx, mongoFilter(filter))
	if err != nil {
		slog.Error("ParticipantModel Mongo List find failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*Participant
	if err = cursor.All(ctx, &participants); err != nil {
		slog.Error("ParticipantModel Mongo List cursor failed", "error", err)
		return nil, err
	}

	slog.Info("ParticipantModel Mongo List", "count", len(participants))
	return participants, nil
}

func (r *MongoRepository) GetByQR(ctx context.Context, qrId string) (*Participant, error) {
	participant := new(Participant)
	err := r.collection.FindOne(ctx, bson.M{"id": qrId}).Decode(participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrParticipantNotFound
		}
		slog.Error("ParticipantModel Mongo GetByQR failed", "error", err, "qr_id", qrId)
		return nil, err
	}
	return participant, nil
}

func (r *MongoRepository) MarkAttendance(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error) {
	update := bson.M{"$set": bson.M{
		"attend":    true,
		"timestamp": timestamp,
		"markedBy":  markedBy,
	}}

	participant := new(Participant)
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": qrId},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrParticipantNotFound
		}
		slog.Error("ParticipantModel Mongo MarkAttendance failed", "error", err, "qr_id", qrId)
		return nil, err
	}
	return participant, nil
}

func (r *MongoRepository) MarkCertificateGenerated(ctx context.Context, docId string, certificateLink string) error {
	result, err := r.collection.UpdateOne(ctx, mongoIDFilter(docId), bson.M{"$set": bson.M{
		"certificateLink": certificateLink,
		"certgen":         true,
	}})
	if err != nil {
		slog.Error("ParticipantModel Mongo MarkCertificateGenerated failed", "error", err, "doc_id", docId)
		return err
	}
	if result.MatchedCount == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

// mongoIDFilter matches docId as stored. ObjectID keys decode into DocID as
// their hex form, so a hex id is tried both as an ObjectID and as a string.
func mongoIDFilter(docId string) bson.M {
	oid, err := primitive.ObjectIDFromHex(docId)
	if err != nil {
		return bson.M{"_id": docId}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{oid, docId}}}
}

func mongoFilter(filter ParticipantFilter) bson.M {
	query := bson.M{}
	if filter.Attend != nil {
		query["attend"] = *filter.Attend
	}
	if filter.Selected != nil {
		query["selected"] = *filter.Selected
	}
	return query
}
