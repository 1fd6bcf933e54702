// Package messaging provides a broker-agnostic API for publishing messages.
//
// Use-case code depends on Publisher only; the concrete broker (NATS, Kafka,
// or nothing at all) is selected by driver name at startup.
package messaging
