package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// MockUserRepository is an in-memory implementation of domain.UserRepository.
type MockUserRepository struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	nextID  int
	failing error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing != nil {
		return "", m.failing
	}
	m.nextID++
	id := fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	return id, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing != nil {
		return nil, m.failing
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing != nil {
		return nil, m.failing
	}
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) ListByType(ctx context.Context, userType string) ([]*domain.User, error) {
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

// MockPlanRepository is an in-memory implementation of domain.PlanRepository.
type MockPlanRepository struct {
	mu        sync.Mutex
	plans     map[string]*domain.PlanRecord
	nextID    int
	createErr error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{plans: make(map[string]*domain.PlanRecord)}
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *domain.PlanRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return "", m.createErr
	}
	m.nextID++
	id := fmt.Sprintf("plan-%d", m.nextID)
	stored := *plan
	stored.ID = id
	m.plans[id] = &stored
	return id, nil
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[id]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	copied := *plan
	return &copied, nil
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *domain.PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[plan.ID]; !ok {
		return domain.ErrPlanNotFound
	}
	stored := *plan
	m.plans[plan.ID] = &stored
	return nil
}

func (m *MockPlanRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[id]; !ok {
		return domain.ErrPlanNotFound
	}
	delete(m.plans, id)
	return nil
}

func (m *MockPlanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PlanRecord, error) {
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

func (m *MockPlanRepository) ListByStatus(ctx context.Context, status string) ([]*domain.PlanRecord, error) {
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

// MockCacheRepository is an in-memory implementation of domain.CacheRepository.
type MockCacheRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string]string)}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (m *MockCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

// MockMailSender records sent mail.
type MockMailSender struct {
	mu       sync.Mutex
	sent     []sentMail
	sendErr  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func NewMockMailSender() *MockMailSender {
	return &MockMailSender{}
}

func (m *MockMailSender) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *MockMailSender) lastBody() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].body
}

// MockClusterPredictor returns a fixed cluster id.
type MockClusterPredictor struct {
	cluster int
	err     error
}

func (m *MockClusterPredictor) Predict(features domain.FeatureVector) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.cluster, nil
}

// validForm returns a complete, valid profile form for tests.
func validForm() *ProfileForm {
	return &ProfileForm{
		WeightInKg:      "70",
		HeightInCm:      "170",
		Age:             "30",
		DaysPerWeek:     "4",
		SleepHours:      "7",
		Intensity:       "2",
		ExerciseType:    "1",
		CalorieTarget:   "2000",
		MacroPreference: "balanced",
		DietType:        "balanced",
		Equipment:       "none",
		FitnessLevel:    "2",
		MealsPerDay:     "4",
	}
}

// testClusterTable mirrors the cluster analysis artifact used in tests.
func testClusterTable() domain.ClusterTable {
	return domain.ClusterTable{
		"0": {
			Focus:           "weight_loss",
			IntensityLevel:  "Moderate",
			RecommendedDays: 4,
			Center:          []float64{70, 1.7, 30, 24.2, 4, 7, 2000, 0.3, 0.4, 0.3, 28, 2, 1, 0},
			DominantFeatures: map[string]float64{
				"calories": -0.4, "bmi": 0.2, "age": 0.1,
			},
		},
	}
}

// containsField reports whether an error message mentions a field name.
func containsField(err error, field string) bool {
	return err != nil && strings.Contains(err.Error(), field)
}
