package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEventMessage {
	return &service.OrderEventMessage{
		RequestID:   "req-1",
		EventID:     "6f1c7f9e-4c1e-4f8b-9a57-3b0f7f7d2a11",
		OrderID:     "0b8f7b0e-1c55-4d0e-a3f1-4b8b7cbe1d22",
		OrderNumber: "ORD-20260314-7KQ2MX",
		Action:      "cancelled",
		FromStatus:  "pending",
		ToStatus:    "cancelled",
		ActorKind:   "customer",
	}
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	p, err := newPublisher(ctx, nil, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9/push"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderKafka, Brokers: []string{"localhost:9092"}, TopicID: "order-events"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &kafkaPublisher{}, p)

	p, err = newPublisher(ctx, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:9/push",
		Breaker:       config.BreakerConfig{ConsecutiveFailures: 3},
	}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &breakerPublisher{}, p)
}

func TestNewPublisher_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	tests := map[string]*config.PubSubConfig{
		"unknown provider":       {Provider: "sqs"},
		"local without endpoint": {Provider: ProviderLocal},
		"google without project": {Provider: ProviderGoogle, TopicID: "order-events"},
		"google without topic":   {Provider: ProviderGoogle, ProjectID: "shop"},
		"kafka without brokers":  {Provider: ProviderKafka, TopicID: "order-events"},
		"kafka without topic":    {Provider: ProviderKafka, Brokers: []string{"localhost:9092"}},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := newPublisher(ctx, cfg, testLogger())
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := testEvent()
	err := NewLocalHTTPPublisher(server.URL, testLogger()).PublishOrderEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.EventID, got.Message.MessageID)
	assert.Equal(t, event.OrderID, got.Message.OrderingKey)
	assert.Equal(t, "cancelled", got.Message.Attributes["action"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEventMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, testLogger()).PublishOrderEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &fakeWriter{}
	p := &kafkaPublisher{writer: writer, logger: testLogger()}
	event := testEvent()

	require.NoError(t, p.PublishOrderEvent(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte(event.OrderID), msg.Key)

	var decoded service.OrderEventMessage
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)

	headers := make(map[string]string)
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, event.OrderNumber, headers["order_number"])

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &kafkaPublisher{writer: &fakeWriter{err: errors.New("leader not available")}, logger: testLogger()}

	err := p.PublishOrderEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write order event")
}

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	next := mockSvc.NewMockEventPublisher(t)
	ctx := context.Background()
	event := testEvent()

	next.EXPECT().PublishOrderEvent(ctx, event).Return(errors.New("bus down")).Times(2)

	p := NewBreakerPublisher(next, "test", config.BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute}, testLogger())

	assert.Error(t, p.PublishOrderEvent(ctx, event))
	assert.Error(t, p.PublishOrderEvent(ctx, event))

	err := p.PublishOrderEvent(ctx, event)
	assert.ErrorIs(t, err, ErrPublisherUnavailable)
}

func TestBreakerPublisher_PassesThroughSuccess(t *testing.T) {
	next := mockSvc.NewMockEventPublisher(t)
	ctx := context.Background()
	event := testEvent()

	next.EXPECT().PublishOrderEvent(ctx, event).Return(nil).Times(3)
	next.EXPECT().Close().Return(nil)

	p := NewBreakerPublisher(next, "test", config.BreakerConfig{ConsecutiveFailures: 1}, testLogger())
	for range 3 {
		require.NoError(t, p.PublishOrderEvent(ctx, event))
	}
	require.NoError(t, p.Close())
}
