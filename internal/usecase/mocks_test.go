package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/annotation-microservice/internal/domain"
)

type MockSubstationRepository struct {
	mock.Mock
}

func (m *MockSubstationRepository) List(ctx context.Context) ([]domain.Substation, string, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.Substation)
	return records, args.String(1), args.Error(2)
}

func (m *MockSubstationRepository) ReplaceAll(ctx context.Context, records []domain.Substation, expectedVersion string) (string, error) {
	args := m.Called(ctx, records, expectedVersion)
	return args.String(0), args.Error(1)
}

type MockPolygonRepository struct {
	mock.Mock
}

func (m *MockPolygonRepository) List(ctx context.Context) ([]domain.ComponentPolygon, string, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.ComponentPolygon)
	return records, args.String(1), args.Error(2)
}

func (m *MockPolygonRepository) ReplaceAll(ctx context.Context, records []domain.ComponentPolygon, expectedVersion string) (string, error) {
	args := m.Called(ctx, records, expectedVersion)
	return args.String(0), args.Error(1)
}

type MockTileRepository struct {
	mock.Mock
}

func (m *MockTileRepository) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	args := m.Called(ctx, addr)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type MockTileURLSigner struct {
	mock.Mock
}

func (m *MockTileURLSigner) SignTileURL(ctx context.Context, addr domain.TileAddress) (string, error) {
	args := m.Called(ctx, addr)
	return args.String(0), args.Error(1)
}

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	ch, _ := args.Get(0).(<-chan domain.StreamMessage)
	return ch, args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	args := m.Called(ctx, addr)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockCacheRepository) SetTile(ctx context.Context, addr domain.TileAddress, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, addr, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*domain.Statistics)
	return stats, args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}
