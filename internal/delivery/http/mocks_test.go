package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// mockUserRepository is an in-memory implementation of domain.UserRepository.
type mockUserRepository struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	return id, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) ListByType(ctx context.Context, userType string) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.User
	for _, user := range m.users {
		if user.UserType == userType {
			copied := *user
			result = append(result, &copied)
		}
	}
	return result, nil
}

// mockPlanRepository is an in-memory implementation of domain.PlanRepository.
type mockPlanRepository struct {
	mu     sync.Mutex
	plans  map[string]*domain.PlanRecord
	nextID int
}

func newMockPlanRepository() *mockPlanRepository {
	return &mockPlanRepository{plans: make(map[string]*domain.PlanRecord)}
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *domain.PlanRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("plan-%d", m.nextID)
	stored := *plan
	stored.ID = id
	m.plans[id] = &stored
	return id, nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[id]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	copied := *plan
	return &copied, nil
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *domain.PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[plan.ID]; !ok {
		return domain.ErrPlanNotFound
	}
	stored := *plan
	m.plans[plan.ID] = &stored
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[id]; !ok {
		return domain.ErrPlanNotFound
	}
	delete(m.plans, id)
	return nil
}

func (m *mockPlanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.PlanRecord
	for _, plan := range m.plans {
		if plan.UserID == userID {
			copied := *plan
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockPlanRepository) ListByStatus(ctx context.Context, status string) ([]*domain.PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.PlanRecord
	for _, plan := range m.plans {
		if plan.Status == status {
			copied := *plan
			result = append(result, &copied)
		}
	}
	return result, nil
}

// mockCacheRepository is an in-memory implementation of domain.CacheRepository.
type mockCacheRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string]string)}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (m *mockCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

// mockMailSender records sent mail.
type mockMailSender struct {
	mu   sync.Mutex
	sent []string
}

func newMockMailSender() *mockMailSender {
	return &mockMailSender{}
}

func (m *mockMailSender) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, body)
	return nil
}

func (m *mockMailSender) lastBody() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}

// mockClusterPredictor returns a fixed cluster id.
type mockClusterPredictor struct {
	cluster int
}

func (m *mockClusterPredictor) Predict(features domain.FeatureVector) (int, error) {
	return m.cluster, nil
}
