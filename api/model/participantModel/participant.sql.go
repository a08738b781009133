package participantmodel

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

// SQLRepository stores participants in a PostgreSQL table through GORM.
type SQLRepository struct {
	db    *gorm.DB
	table string
}

var _ IParticipantRepository = (*SQLRepository)(nil)

func NewSQLRepository(db *gorm.DB, table string) *SQLRepository {
	return &SQLRepository{
		db:    db,
		table: table,
	}
}

// Migrate creates or updates the participant table.
func (r *SQLRepository) Migrate() error {
	return r.db.Table(r.table).AutoMigrate(&Participant{})
}

func (r *SQLRepository) List(ctx context.Context, filter ParticipantFilter) ([]*Participant, error) {
	query := r.db.WithContext(ctx).Table(r.table)
	if filter.Attend != nil {
		query = query.Where("attend = ?", *filter.Attend)
	}
	if filter.Selected != nil {
		query = query.Where("selected = ?", *filter.Selected)
	}

	var participants []*Participant
	if err := query.Order("name").Find(&participants).Error; err != nil {
		slog.Error("ParticipantModel SQL List failed", "error", err)
		return nil, err
	}

	slog.Info("ParticipantModel SQL List", "count", len(participants))
	return participants, nil
}

func (r *SQLRepository) GetByQR(ctx context.Context, qrId string) (*Participant, error) {
	participant := new(Participant)
	err := r.db.WithContext(ctx).Table(r.table).Where("qr_id = ?", qrId).First(participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		slog.Error("ParticipantModel SQL GetByQR failed", "error", err, "qr_id", qrId)
		return nil, err
	}
	return participant, nil
}

func (r *SQLRepository) MarkAttendance(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error) {
	var participant *Participant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found := new(Participant)
		if err := tx.Table(r.table).Where("qr_id = ?", qrId).First(found).Error; err != nil {
			return err
		}

		err := tx.Table(r.table).Where("doc_id = ?", found.DocID).Updates(map[string]any{
			"attend":    true,
			"timestamp": timestamp,
			"marked_by": markedBy,
		}).Error
		if err != nil {
			return err
		}

		found.Attend = true
		found.Timestamp = timestamp
		found.MarkedBy = markedBy
		participant = found
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		slog.Error("ParticipantModel SQL MarkAttendance failed", "error", err, "qr_id", qrId)
		return nil, err
	}
	return participant, nil
}

func (r *SQLRepository) MarkCertificateGenerated(ctx context.Context, docId string, certificateLink string) error {
	result := r.db.WithContext(ctx).Table(r.table).Where("doc_id = ?", docId).Updates(map[string]any{
		"certificate_link": certificateLink,
		"certgen":          true,
	})
	if result.Error != nil {
		slog.Error("ParticipantModel SQL MarkCertificateGenerated failed", "error", result.Error, "doc_id", docId)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}
