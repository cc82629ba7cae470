package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sales_analytics/pkg/logger"
)

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithContext(ctx context.Context) logger.Logger {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields ...logger.Field) logger.Logger {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) Sync() error {
	args := m.Called()
	return args.Error(0)
}

func TestOrderProducer_PublishOrder_EmptyPayload(t *testing.T) {
	producer := &OrderProducer{
		topic:  "test-topic",
		logger: new(MockLogger),
	}

	err := producer.PublishOrder(context.Background(), "A1", []byte{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payload is empty")
}

func TestOrderProducer_PublishOrder_NoClient(t *testing.T) {
	producer := &OrderProducer{
		topic:  "test-topic",
		logger: new(MockLogger),
	}

	err := producer.PublishOrder(context.Background(), "A1", []byte(`{"order_id": "A1"}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestOrderProducer_Close(t *testing.T) {
	mockLog := new(MockLogger)
	producer := &OrderProducer{
		topic:  "test-topic",
		logger: mockLog,
	}
	mockLog.On("Info", "Closing Kafka producer", mock.Anything).Return()

	err := producer.Close(context.Background())

	assert.NoError(t, err)
	mockLog.AssertExpectations(t)
}
