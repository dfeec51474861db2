package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"deskhub/domain/ports"
	"deskhub/pkg/config"
	"deskhub/pkg/logger"
)

// NatsNotifier publishes reminders on a NATS subject so external consumers
// (desktop toasts, chat bridges) can pick them up.
type NatsNotifier struct {
	conn    *nats.Conn
	subject string
}

func NewNatsNotifier(cfg *config.NATSConfig) (*NatsNotifier, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect NATS: %w", err)
	}

	logger.Info("NATS connected", "url", cfg.URL, "subject", cfg.Subject)

	return &NatsNotifier{conn: conn, subject: cfg.Subject}, nil
}

func (n *NatsNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return n.conn.Publish(n.subject, data)
}

func (n *NatsNotifier) Close() {
	if n.conn != nil {
		n.conn.Drain()
	}
}
