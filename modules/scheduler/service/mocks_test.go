package service

import (
	"context"
	"time"

	"talentsched/core/params"
	"talentsched/core/queue"
	candidateentity "talentsched/modules/candidate/entity"
	jobentity "talentsched/modules/job/entity"
	"talentsched/modules/scheduler/entity"
	"talentsched/modules/scheduler/repository"

	"github.com/google/uuid"
)

type MockInterviewRepository struct {
	CreateFunc             func(ctx context.Context, interview *entity.Interview) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*entity.Interview, error)
	ListFunc               func(ctx context.Context, filter repository.InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, error)
	ListActiveInWindowFunc func(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.Interview, error)
	ListActiveForEmailFunc func(ctx context.Context, email string, windowStart, windowEnd time.Time) ([]entity.Interview, error)
	UpdateStatusFunc       func(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error
	MarkRescheduledFunc    func(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error)
}

func (m *MockInterviewRepository) Create(ctx context.Context, interview *entity.Interview) error {
	return m.CreateFunc(ctx, interview)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockInterviewRepository) List(ctx context.Context, filter repository.InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, error) {
	return m.ListFunc(ctx, filter, queryParams)
}

func (m *MockInterviewRepository) ListActiveInWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.Interview, error) {
	if m.ListActiveInWindowFunc != nil {
		return m.ListActiveInWindowFunc(ctx, windowStart, windowEnd)
	}
	return nil, nil
}

func (m *MockInterviewRepository) ListActiveForEmail(ctx context.Context, email string, windowStart, windowEnd time.Time) ([]entity.Interview, error) {
	if m.ListActiveForEmailFunc != nil {
		return m.ListActiveForEmailFunc(ctx, email, windowStart, windowEnd)
	}
	return nil, nil
}

func (m *MockInterviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *MockInterviewRepository) MarkRescheduled(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
	return m.MarkRescheduledFunc(ctx, id, version, reason)
}

type MockAvailabilityRepository struct {
	CreateFunc                   func(ctx context.Context, slot *entity.AvailabilitySlot) error
	ListByEmailFunc              func(ctx context.Context, email string, from, to time.Time) ([]entity.AvailabilitySlot, error)
	ListOverlappingForEmailsFunc func(ctx context.Context, emails []string, windowStart, windowEnd time.Time) ([]entity.AvailabilitySlot, error)
}

func (m *MockAvailabilityRepository) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	return m.CreateFunc(ctx, slot)
}

func (m *MockAvailabilityRepository) ListByEmail(ctx context.Context, email string, from, to time.Time) ([]entity.AvailabilitySlot, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email, from, to)
	}
	return nil, nil
}

func (m *MockAvailabilityRepository) ListOverlappingForEmails(ctx context.Context, emails []string, windowStart, windowEnd time.Time) ([]entity.AvailabilitySlot, error) {
	if m.ListOverlappingForEmailsFunc != nil {
		return m.ListOverlappingForEmailsFunc(ctx, emails, windowStart, windowEnd)
	}
	return nil, nil
}

type MockSchedulingLogRepository struct {
	AppendFunc          func(ctx context.Context, log *entity.SchedulingLog) error
	ListByInterviewFunc func(ctx context.Context, interviewID uuid.UUID, limit int) ([]entity.SchedulingLog, error)
	ListBetweenFunc     func(ctx context.Context, from, to time.Time) ([]entity.SchedulingLog, error)
}

func (m *MockSchedulingLogRepository) Append(ctx context.Context, log *entity.SchedulingLog) error {
	return m.AppendFunc(ctx, log)
}

func (m *MockSchedulingLogRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID, limit int) ([]entity.SchedulingLog, error) {
	if m.ListByInterviewFunc != nil {
		return m.ListByInterviewFunc(ctx, interviewID, limit)
	}
	return nil, nil
}

func (m *MockSchedulingLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.SchedulingLog, error) {
	if m.ListBetweenFunc != nil {
		return m.ListBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

type MockCandidateRepository struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*candidateentity.Candidate, error)
}

func (m *MockCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*candidateentity.Candidate, error) {
	return m.GetByIDFunc(ctx, id)
}

type MockJobRepository struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*jobentity.JobPosition, error)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*jobentity.JobPosition, error) {
	return m.GetByIDFunc(ctx, id)
}

type MockGateway struct {
	GatherFunc func(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*AvailabilityData, error)
}

func (m *MockGateway) Gather(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*AvailabilityData, error) {
	return m.GatherFunc(ctx, emails, windowStart, windowEnd)
}

type MockDirectory struct {
	ProfileFunc func(ctx context.Context, email string) (*CalendarProfile, error)
}

func (m *MockDirectory) Profile(ctx context.Context, email string) (*CalendarProfile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, email)
	}
	return nil, nil
}

type MockBroker struct {
	PublishFunc func(ctx context.Context, channel string, data any) error
}

func (m *MockBroker) Publish(ctx context.Context, channel string, data any) error {
	return m.PublishFunc(ctx, channel, data)
}

func (m *MockBroker) Close() error { return nil }

type MockQueue struct {
	EnqueueReminderFunc func(ctx context.Context, payload queue.ReminderPayload, processAt time.Time) error
}

func (m *MockQueue) EnqueueReminder(ctx context.Context, payload queue.ReminderPayload, processAt time.Time) error {
	return m.EnqueueReminderFunc(ctx, payload, processAt)
}

func (m *MockQueue) Close() error { return nil }

type MockStorage struct {
	UploadFunc func(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

func (m *MockStorage) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	return m.UploadFunc(ctx, key, body, contentType)
}
