package participantmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestParticipantFilter_Matches(t *testing.T) {
	attending := &Participant{Attend: true, Selected: true}
	absent := &Participant{Attend: false, Selected: true}

	tests := []struct {
		name   string
		filter ParticipantFilter
		in     *Participant
		want   bool
	}{
		{"empty filter matches all", ParticipantFilter{}, absent, true},
		{"attend true rejects absent", ParticipantFilter{Attend: boolPtr(true)}, absent, false},
		{"attend false matches absent", ParticipantFilter{Attend: boolPtr(false)}, absent, true},
		{"selected true matches", ParticipantFilter{Selected: boolPtr(true)}, attending, true},
		{"selected false rejects", ParticipantFilter{Selected: boolPtr(false)}, attending, false},
		{"both set", ParticipantFilter{Attend: boolPtr(true), Selected: boolPtr(true)}, attending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.in))
		})
	}
}

func TestMongoFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, mongoFilter(ParticipantFilter{}))

	got := mongoFilter(ParticipantFilter{
		Attend:   boolPtr(true),
		Selected: boolPtr(false),
	})
	assert.Equal(t, bson.M{
		"attend":   true,
		"selected": false,
	}, got)
}

func TestMongoIDFilter_ObjectIDKey(t *testing.T) {
	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "id", Value: "qr1"},
		{Key: "name", Value: "Alice"},
	})
	require.NoError(t, err)

	participant := new(Participant)
	require.NoError(t, bson.Unmarshal(raw, participant))
	assert.Equal(t, oid.Hex(), participant.DocID)

	filter := mongoIDFilter(participant.DocID)
	assert.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{oid, oid.Hex()}}}, filter)

	encoded, err := bson.Marshal(filter)
	require.NoError(t, err)
	ids := bson.Raw(encoded).Lookup("_id", "$in").Array()
	values, err := ids.Values()
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, bson.TypeObjectID, values[0].Type)
	assert.Equal(t, oid, values[0].ObjectID())
}

func TestMongoIDFilter_StringKey(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "_id", Value: "participant-7"}, {Key: "id", Value: "qr7"}})
	require.NoError(t, err)

	participant := new(Participant)
	require.NoError(t, bson.Unmarshal(raw, participant))
	assert.Equal(t, "participant-7", participant.DocID)
	assert.Equal(t, bson.M{"_id": "participant-7"}, mongoIDFilter(participant.DocID))
}

func TestMockParticipantRepository_Defaults(t *testing.T) {
	mock := NewMockParticipantRepository()

	participants, err := mock.List(t.Context(), ParticipantFilter{})
	assert.NoError(t, err)
	assert.Empty(t, participants)

	_, err = mock.GetByQR(t.Context(), "missing")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	assert.NoError(t, mock.MarkCertificateGenerated(t.Context(), "doc", "link"))
}
