package participantmodel

import (
	"context"
	"errors"
)

var ErrParticipantNotFound = errors.New("participant not found")

// Participant is a registration record. DocID is the store's primary key;
// ID is the value encoded in the participant's QR ticket.
type Participant struct {
	DocID           string `json:"docId" firestore:"-" bson:"_id,omitempty" gorm:"column:doc_id;primaryKey"`
	ID              string `json:"id" firestore:"id" bson:"id" gorm:"column:qr_id;index"`
	Name            string `json:"name" firestore:"name" bson:"name" gorm:"column:name"`
	Email           string `json:"email" firestore:"email" bson:"email" gorm:"column:email"`
	Attend          bool   `json:"attend" firestore:"attend" bson:"attend" gorm:"column:attend"`
	Selected        bool   `json:"selected" firestore:"selected" bson:"selected" gorm:"column:selected"`
	CertGen         bool   `json:"certgen" firestore:"certgen" bson:"certgen" gorm:"column:certgen"`
	CertificateLink string `json:"certificateLink,omitempty" firestore:"certificateLink,omitempty" bson:"certificateLink,omitempty" gorm:"column:certificate_link"`
	Timestamp       string `json:"timestamp,omitempty" firestore:"timestamp,omitempty" bson:"timestamp,omitempty" gorm:"column:timestamp"`
	MarkedBy        string `json:"markedBy,omitempty" firestore:"markedBy,omitempty" bson:"markedBy,omitempty" gorm:"column:marked_by"`
}

// ParticipantFilter narrows List. Nil fields are not filtered on.
type ParticipantFilter struct {
	Attend   *bool
	Selected *bool
}

// IParticipantRepository defines the interface for participant repository operations
type IParticipantRepository interface {
	List(ctx context.Context, filter ParticipantFilter) ([]*Participant, error)
	GetByQR(ctx context.Context, qrId string) (*Participant, error)
	MarkAttendance(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error)
	MarkCertificateGenerated(ctx context.Context, docId string, certificateLink string) error
}

// Matches reports whether p passes the filter.
func (f ParticipantFilter) Matches(p *Participant) bool {
	if f.Attend != nil && p.Attend != *f.Attend {
		return false
	}
	if f.Selected != nil && p.Selected != *f.Selected {
		return false
	}
	return true
}
