package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/peacelink/peacelink/internal/pkg/logger"
)

// Producer publishes JSON-encoded events to nsqd.
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to the nsqd at address and verifies it is
// reachable before returning.
func NewProducer(address string) (*Producer, error) {
	p, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("nsq producer for %s: %w", address, err)
	}
	if err := p.Ping(); err != nil {
		p.Stop()
		return nil, fmt.Errorf("nsqd unreachable at %s: %w", address, err)
	}
	return &Producer{producer: p}, nil
}

// Publish marshals the event and sends it on topic.
func (p *Producer) Publish(topic string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event for topic %s: %w", topic, err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	logger.Debug("event published",
		logger.String("topic", topic),
		logger.Int("bytes", len(body)))
	return nil
}

// Stop flushes pending publishes and closes the connection.
func (p *Producer) Stop() {
	p.producer.Stop()
}
