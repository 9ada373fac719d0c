package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// MockAnalytics cobre todos os gateways do backend de analytics.
type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) GetLeads(ctx context.Context, filters entity.LeadFilters) ([]entity.Lead, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockAnalytics) GetFollowupLeads(ctx context.Context) ([]entity.Lead, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]entity.Lead), args.Int(1), args.Error(2)
}

func (m *MockAnalytics) GetAdvogados(ctx context.Context) ([]entity.Advogado, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Advogado), args.Error(1)
}

func (m *MockAnalytics) GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardSummary), args.Error(1)
}

func (m *MockAnalytics) CheckHealth(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockAnalytics) PreviewFollowup(ctx context.Context, segment entity.Segment) (*entity.FollowupPreview, error) {
	args := m.Called(ctx, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowupPreview), args.Error(1)
}

func (m *MockAnalytics) SendMassFollowup(ctx context.Context, input entity.MassFollowupRequest) (*entity.MassFollowupResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MassFollowupResult), args.Error(1)
}

type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) PublishMassFollowup(ctx context.Context, job entity.MassFollowupJob) error {
	return m.Called(ctx, job).Error(0)
}

type MockReportSender struct {
	mock.Mock
}

func (m *MockReportSender) SendFollowupReport(to string, job entity.MassFollowupJob) error {
	return m.Called(to, job).Error(0)
}

// fakeJobStore guarda o histórico de estados para os testes do processor.
type fakeJobStore struct {
	mu      sync.Mutex
	jobs    map[string]entity.MassFollowupJob
	history []entity.JobState
	saveErr error
	getErr  error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]entity.MassFollowupJob)}
}

func (f *fakeJobStore) Save(_ context.Context, job entity.MassFollowupJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.jobs[job.ID] = job
	f.history = append(f.history, job.State)
	return nil
}

func (f *fakeJobStore) Get(_ context.Context, id string) (*entity.MassFollowupJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	job, ok := f.jobs[id]
	if !ok {
		return nil, entity.ErrJobNotFound
	}
	return &job, nil
}

func (f *fakeJobStore) set(job entity.MassFollowupJob) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
}

type fakeSettingsRepo struct {
	mu      sync.Mutex
	data    map[string]entity.Settings
	saves   int
	loadErr error
	saveErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{data: make(map[string]entity.Settings)}
}

func (f *fakeSettingsRepo) Load(_ context.Context, sessionID string) (entity.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return entity.Settings{}, f.loadErr
	}
	s, ok := f.data[sessionID]
	if !ok {
		return entity.DefaultSettings(), nil
	}
	return s, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, sessionID string, s entity.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[sessionID] = s
	f.saves++
	return nil
}
