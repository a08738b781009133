package participantmodel

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreRepository stores participants as documents of one collection.
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var _ IParticipantRepository = (*FirestoreRepository)(nil)

func NewFirestoreRepository(client *firestore.Client, collection string) *FirestoreRepository {
	return &FirestoreRepository{
		client:     client,
		collection: collection,
	}
}

func (r *FirestoreRepository) List(ctx context.Context, filter ParticipantFilter) ([]*Participant, error) {
	query := r.client.Collection(r.collection).Query
	if filter.Attend != nil {
		query = query.Where("attend", "==", *filter.Attend)
	}
	if filter.Selected != nil {
		query = query.Where("selected", "==", *filter.Selected)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var participants []*Participant
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Error("ParticipantModel Firestore List failed", "error", err, "collection", r.collection)
			return nil, err
		}

		participant, err := participantFromSnapshot(doc)
		if err != nil {
			slog.Warn("ParticipantModel Firestore List skipped undecodable document", "error", err, "doc_id", doc.Ref.ID)
			continue
		}
		if filter.Matches(participant) {
			participants = append(participants, participant)
		}
	}

	slog.Info("ParticipantModel Firestore List", "collection", r.collection, "count", len(participants))
	return participants, nil
}

func (r *FirestoreRepository) GetByQR(ctx context.Context, qrId string) (*Participant, error) {
	doc, err := r.findByQR(ctx, qrId)
	if err != nil {
		return nil, err
	}
	return participantFromSnapshot(doc)
}

func (r *FirestoreRepository) MarkAttendance(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error) {
	doc, err := r.findByQR(ctx, qrId)
	if err != nil {
		return nil, err
	}

	participant, err := participantFromSnapshot(doc)
	if err != nil {
		return nil, err
	}

	_, err = doc.Ref.Update(ctx, []firestore.Update{
		{Path: "attend", Value: true},
		{Path: "timestamp", Value: timestamp},
		{Path: "markedBy", Value: markedBy},
	})
	if err != nil {
		slog.Error("ParticipantModel Firestore MarkAttendance failed", "error", err, "qr_id", qrId)
		return nil, err
	}

	participant.Attend = true
	participant.Timestamp = timestamp
	participant.MarkedBy = markedBy
	return participant, nil
}

func (r *FirestoreRepository) MarkCertificateGenerated(ctx context.Context, docId string, certificateLink string) error {
	_, err := r.client.Collection(r.collection).Doc(docId).Update(ctx, []firestore.Update{
		{Path: "certificateLink", Value: certificateLink},
		{Path: "certgen", Value: true},
	})
	if err != nil {
		slog.Error("ParticipantModel Firestore MarkCertificateGenerated failed", "error", err, "doc_id", docId)
		return err
	}
	return nil
}

func (r *FirestoreRepository) findByQR(ctx context.Context, qrId string) (*firestore.DocumentSnapshot, error) {
	docs, err := r.client.Collection(r.collection).Where("id", "==", qrId).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		slog.Error("ParticipantModel Firestore findByQR failed", "error", err, "qr_id", qrId)
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrParticipantNotFound
	}
	return docs[0], nil
}

func participantFromSnapshot(doc *firestore.DocumentSnapshot) (*Participant, error) {
	participant := new(Participant)
	if err := doc.DataTo(participant); err != nil {
		return nil, fmt.Errorf("failed to decode participant %s: %w", doc.Ref.ID, err)
	}
	participant.DocID = doc.Ref.ID
	if participant.ID == "" {
		participant.ID = doc.Ref.ID
	}
	return participant, nil
}
