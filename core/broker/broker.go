package broker

import (
	"context"
	"encoding/json"
	"time"

	"talentsched/core/logger"

	"github.com/redis/go-redis/v9"
)

// IBroker publishes scheduling events for downstream consumers
// (communication agents, sync workers) over Redis pub/sub.
type IBroker interface {
	Publish(ctx context.Context, channel string, data any) error
	Close() error
}

type BrokerConfig struct {
	Addr     string
	Password string
	DB       int
}

type Broker struct {
	client *redis.Client
}

// Every published message is wrapped in this envelope so consumers can
// rely on a uniform shape across channels.
type envelope struct {
	Timestamp string `json:"timestamp"`
	Channel   string `json:"channel"`
	Data      any    `json:"data"`
}

func NewBroker(cfg BrokerConfig) (*Broker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Broker:Init", "addr", cfg.Addr, "db", cfg.DB)
	return &Broker{client: client}, nil
}

func (b *Broker) Publish(ctx context.Context, channel string, data any) error {
	msg := envelope{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Channel:   channel,
		Data:      data,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		logger.Error("Broker:Publish:Error:", err)
		return err
	}

	return nil
}

func (b *Broker) Close() error {
	return b.client.Close()
}
