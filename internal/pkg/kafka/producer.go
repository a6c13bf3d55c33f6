package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer publishes render events. Events are best-effort telemetry: a
// delivery failure must never fail the request that produced it.
type Producer interface {
	SendMessage(topic string, message interface{}) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

func NewProducer(brokers string, topic string) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logrus.Infof("Kafka producer configured for brokers: %s", brokers)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", brokers)
	if err != nil {
		logrus.Warnf("Kafka connection failed: %v", err)
		logrus.Warn("Using mock producer instead")
		return &mockProducer{}
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}

	if err := conn.CreateTopics(topicConfigs...); err != nil {
		logrus.Infof("Could not create topic (might already exist): %v", err)
	} else {
		logrus.Infof("Created topic: %s", topic)
	}

	logrus.Infof("Connected to Kafka at %s", brokers)
	return &kafkaProducer{writer: writer}
}

func (p *kafkaProducer) SendMessage(topic string, message interface{}) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte("profile-card"),
		Value: messageBytes,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logrus.Errorf("Failed to write message to Kafka: %v", err)
		return err
	}

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

// NewNopProducer returns a producer that only logs, for running with event
// publishing disabled.
func NewNopProducer() Producer {
	return &mockProducer{}
}

// Mock producer for running without Kafka
type mockProducer struct{}

func (m *mockProducer) SendMessage(topic string, message interface{}) error {
	logrus.Debugf("MOCK: Message to topic %s: %v", topic, message)
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
