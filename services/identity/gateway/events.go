package gateway

import (
	"context"
	"time"

	"github.com/peacelink/peacelink/internal/pkg/constants"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
)

// CodeDeliveryEvent is published for downstream SMS delivery workers.
type CodeDeliveryEvent struct {
	Phone    string    `json:"phone"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

// AccountCreatedEvent announces a finalized account record.
type AccountCreatedEvent struct {
	AccountID string      `json:"account_id"`
	Role      models.Role `json:"role"`
	Verified  bool        `json:"verified"`
	CreatedAt time.Time   `json:"created_at"`
}

// DeliverCode hands a verification code to the delivery channel. The demo
// channel is the service log; when a producer is configured the event also
// goes to the SMS delivery topic.
func (g *IdentityGW) DeliverCode(ctx context.Context, phone, code string) error {
	logger.Info("Delivering verification code",
		logger.String("phone", phone),
		logger.String("code", code))

	if g.producer == nil {
		return nil
	}

	event := CodeDeliveryEvent{
		Phone:    phone,
		Code:     code,
		IssuedAt: time.Now(),
	}
	if err := g.producer.Publish(constants.TopicCodeDelivery, event); err != nil {
		logger.Error("Failed to publish code delivery event",
			logger.String("phone", phone),
			logger.Err(err))
		return err
	}
	return nil
}

// PublishAccountCreated announces a newly registered account.
func (g *IdentityGW) PublishAccountCreated(ctx context.Context, record *models.AccountRecord) error {
	if g.producer == nil {
		return nil
	}

	event := AccountCreatedEvent{
		AccountID: record.ID,
		Role:      record.Role,
		Verified:  record.Verified,
		CreatedAt: record.CreatedAt,
	}
	if err := g.producer.Publish(constants.TopicAccountCreated, event); err != nil {
		logger.Error("Failed to publish account created event",
			logger.String("account_id", record.ID),
			logger.Err(err))
		return err
	}

	logger.Info("Published account created event",
		logger.String("account_id", record.ID),
		logger.String("role", string(record.Role)))
	return nil
}
