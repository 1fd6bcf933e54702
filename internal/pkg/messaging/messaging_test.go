package messaging

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		opts    FactoryOptions
		want    any
		wantErr error
	}{
		{name: "empty is noop", driver: "", want: &Noop{}},
		{name: "none", driver: " None ", want: &Noop{}},
		{name: "kafka", driver: "kafka", opts: FactoryOptions{Kafka: KafkaConfig{Brokers: []string{"localhost:9092"}}}, want: &Kafka{}},
		{name: "kafka without brokers", driver: "kafka", wantErr: ErrKafkaBrokersRequired},
		{name: "nats without url", driver: "nats", wantErr: ErrNATSURLRequired},
		{name: "unknown", driver: "nsq", wantErr: ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewFromDriver(tt.driver, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
			assert.NoError(t, m.Close())
		})
	}
}

func TestNoopPublish(t *testing.T) {
	res, err := NewNoop().Publish(context.Background(), "authenticator.enrolled", OutgoingMessage{Body: []byte("{}")})
	require.NoError(t, err)
	assert.Equal(t, "authenticator.enrolled", res.Topic)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewNoop().Publish(ctx, "x", OutgoingMessage{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKafkaPublishGuards(t *testing.T) {
	k, err := NewKafka(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	_, err = k.Publish(context.Background(), "", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrKafkaTopicRequired)

	_, err = k.Publish(context.Background(), "topic", OutgoingMessage{Delay: 1})
	assert.ErrorIs(t, err, ErrUnsupported)

	require.NoError(t, k.Close())
	require.NoError(t, k.Close())

	_, err = k.Publish(context.Background(), "topic", OutgoingMessage{})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestNATSConnectFailure(t *testing.T) {
	_, err := NewNATS(NATSConfig{URL: "nats://127.0.0.1:1"})
	assert.Error(t, err)
}

func TestValidHeaders(t *testing.T) {
	in := []Header{{Key: "", Value: []byte("x")}, {Key: "X-Correlation-ID", Value: []byte("abc")}}
	out := validHeaders(in)
	assert.Equal(t, []Header{{Key: "X-Correlation-ID", Value: []byte("abc")}}, out)
	assert.Len(t, in, 2)
}
