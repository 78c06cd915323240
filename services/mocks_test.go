package services

import (
	"context"
	"errors"

	"vacation-rentals/domain"
	"vacation-rentals/repositories"
)

// ============================================
// In-memory repositories for service tests
// ============================================

type mockUserRepository struct {
	users map[uint]*domain.User
	// failWith makes every call return this error.
	failWith error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	// simulated auto-increment
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var n int64
	for _, user := range m.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

type mockPropertyRepository struct {
	properties []domain.VacationProperty
	getAllHits int
	failWith   error
	// afterGetAll runs once the snapshot is taken, before GetAll returns.
	afterGetAll func()
}

func (m *mockPropertyRepository) Create(_ context.Context, property *domain.VacationProperty) error {
	if m.failWith != nil {
		return m.failWith
	}
	property.ID = uint(len(m.properties) + 1)
	m.properties = append(m.properties, *property)
	return nil
}

func (m *mockPropertyRepository) GetAll(_ context.Context) ([]domain.VacationProperty, error) {
	m.getAllHits++
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]domain.VacationProperty, len(m.properties))
	copy(out, m.properties)
	if m.afterGetAll != nil {
		hook := m.afterGetAll
		m.afterGetAll = nil
		hook()
	}
	return out, nil
}

type mockCache struct {
	entries     map[string][]domain.VacationProperty
	generations map[string]uint64
}

func newMockCache() *mockCache {
	return &mockCache{
		entries:     make(map[string][]domain.VacationProperty),
		generations: make(map[string]uint64),
	}
}

func (m *mockCache) Get(key string) ([]domain.VacationProperty, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mockCache) Generation(key string) (uint64, bool) {
	return m.generations[key], true
}

func (m *mockCache) Set(key string, gen uint64, properties []domain.VacationProperty) {
	if gen != m.generations[key] {
		return
	}
	m.entries[key] = properties
}

func (m *mockCache) Delete(key string) {
	m.generations[key]++
	delete(m.entries, key)
}

// passthroughTransactor runs fn directly; rollback is covered by the
// repository tests against a real database.
type passthroughTransactor struct {
	calls int
}

func (p *passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	published []uint
	failWith  error
}

func (r *recordingPublisher) PublishPropertyCreated(_ context.Context, property *domain.VacationProperty) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.published = append(r.published, property.ID)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

var errDatabaseDown = errors.New("database is down")
