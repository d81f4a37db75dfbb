package equipment

import (
	"context"
	"testing"

	"eventdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakeCache struct {
	bumps uint64
}

func (f *fakeCache) Bump() uint64 {
	f.bumps++
	return f.bumps
}

func TestCreateEquipmentNormalizes(t *testing.T) {
	repo := new(MockEquipmentRepository)
	cache := &fakeCache{}
	svc := NewService(repo, cache, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	e, err := svc.Create(context.Background(), EquipmentRequest{Name: "  Tent  ", Qty: -3, Note: " folding "})

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Tent", e.Name)
	assert.Zero(t, e.Qty)
	assert.Equal(t, "folding", e.Note)
	assert.Equal(t, uint64(1), cache.bumps)
}

func TestCreateEquipmentEmptyName(t *testing.T) {
	svc := NewService(new(MockEquipmentRepository), &fakeCache{}, nil)

	_, err := svc.Create(context.Background(), EquipmentRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEquipmentDuplicateName(t *testing.T) {
	cases := map[string]error{
		"gorm translated": gorm.ErrDuplicatedKey,
		"postgres":        &pgconn.PgError{Code: "23505", ConstraintName: "idx_equipment_name"},
	}

	for name, repoErr := range cases {
		repo := new(MockEquipmentRepository)
		cache := &fakeCache{}
		svc := NewService(repo, cache, nil)

		repo.On("Create", mock.Anything, mock.Anything).Return(repoErr)

		_, err := svc.Create(context.Background(), EquipmentRequest{Name: "Tent", Qty: 5})
		assert.ErrorIs(t, err, ErrNameTaken, name)
		assert.Zero(t, cache.bumps, name)
	}
}

func TestUpdateEquipmentNotFound(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo, &fakeCache{}, nil)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), "missing", EquipmentRequest{Name: "Tent"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEquipmentBumpsCache(t *testing.T) {
	repo := new(MockEquipmentRepository)
	cache := &fakeCache{}
	svc := NewService(repo, cache, nil)

	repo.On("Delete", mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
	assert.Equal(t, uint64(1), cache.bumps)
}
