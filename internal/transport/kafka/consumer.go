package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/service"
)

// Consumer ingests listings from the import feed. Messages that fail
// validation are logged and committed anyway; the feed is not retried
// for bad input.
type Consumer struct {
	reader *kafka.Reader
	svc    *service.ListingService
	log    *zap.Logger
}

func NewConsumer(brokers []string, topic, groupID string, svc *service.ListingService, log *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})
	return &Consumer{reader: reader, svc: svc, log: log}
}

func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.log.Info("context done, stopping consumer")
			return ctx.Err()
		default:
			m, err := c.reader.FetchMessage(ctx)
			if err != nil {
				return err
			}
			if err := c.svc.HandleImportMessage(ctx, string(m.Key), m.Value); err != nil {
				c.log.Error("failed to handle import message", zap.Error(err))
			}
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				c.log.Error("failed to commit message", zap.Error(err))
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
