package participantmodel

import "context"

// MockParticipantRepository is a mock implementation for testing
type MockParticipantRepository struct {
	ListFunc                     func(ctx context.Context, filter ParticipantFilter) ([]*Participant, error)
	GetByQRFunc                  func(ctx context.Context, qrId string) (*Participant, error)
	MarkAttendanceFunc           func(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error)
	MarkCertificateGeneratedFunc func(ctx context.Context, docId string, certificateLink string) error
}

// Ensure MockParticipantRepository implements IParticipantRepository
var _ IParticipantRepository = (*MockParticipantRepository)(nil)

// NewMockParticipantRepository creates a new mock repository
func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{}
}

func (m *MockParticipantRepository) List(ctx context.Context, filter ParticipantFilter) ([]*Participant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByQR(ctx context.Context, qrId string) (*Participant, error) {
	if m.GetByQRFunc != nil {
		return m.GetByQRFunc(ctx, qrId)
	}
	return nil, ErrParticipantNotFound
}

func (m *MockParticipantRepository) MarkAttendance(ctx context.Context, qrId string, timestamp string, markedBy string) (*Participant, error) {
	if m.MarkAttendanceFunc != nil {
		return m.MarkAttendanceFunc(ctx, qrId, timestamp, markedBy)
	}
	return nil, ErrParticipantNotFound
}

func (m *MockParticipantRepository) MarkCertificateGenerated(ctx context.Context, docId string, certificateLink string) error {
	if m.MarkCertificateGeneratedFunc != nil {
		return m.MarkCertificateGeneratedFunc(ctx, docId, certificateLink)
	}
	return nil
}
