package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/shandysiswandi/authenticator/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultKeyPrefix namespaces credential records.
const DefaultKeyPrefix = "authenticator:credential:"

type Redis struct {
	client redis.Cmdable
	ins    instrument.Instrumentation
	prefix string
}

func NewRedis(client redis.Cmdable, ins instrument.Instrumentation, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &Redis{
		client: client,
		ins:    ins,
		prefix: prefix,
	}
}

func (s *Redis) key(userID string) string {
	return s.prefix + userID
}

func (s *Redis) startSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	return s.ins.Tracer("authenticator.outbound.cache").Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.redis.key", key),
		),
	)
}

func (s *Redis) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, entity.ErrNotEnrolled) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SaveCredential writes every field of cred in one HSET. The write is
// unconditional, so the last enrollment for a user wins.
func (s *Redis) SaveCredential(ctx context.Context, userID string, cred entity.Credential) (_ entity.WriteAck, err error) {
	key := s.key(userID)
	ctx, span := s.startSpan(ctx, "SaveCredential", key)
	defer func() { s.endSpan(span, err) }()

	added, err := s.client.HSet(ctx, key, cred.Pairs()...).Result()
	if err != nil {
		return entity.WriteAck{}, &entity.StorageError{Op: "HSET", Err: err}
	}

	return entity.WriteAck{Key: key, FieldsAdded: added}, nil
}

// GetCredential reads the whole record. An absent key comes back from Redis
// as an empty hash and is reported as entity.ErrNotEnrolled.
func (s *Redis) GetCredential(ctx context.Context, userID string) (_ *entity.Credential, err error) {
	key := s.key(userID)
	ctx, span := s.startSpan(ctx, "GetCredential", key)
	defer func() { s.endSpan(span, err) }()

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, &entity.StorageError{Op: "HGETALL", Err: err}
	}

	if len(fields) == 0 {
		return nil, entity.ErrNotEnrolled
	}

	cred := entity.CredentialFromFields(fields)
	return &cred, nil
}

// Ping checks the store is reachable.
func (s *Redis) Ping(ctx context.Context) (err error) {
	ctx, span := s.startSpan(ctx, "Ping", "")
	defer func() { s.endSpan(span, err) }()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return &entity.StorageError{Op: "PING", Err: err}
	}
	return nil
}
