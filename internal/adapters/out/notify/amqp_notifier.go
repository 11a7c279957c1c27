package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"fulfillment/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes persistent JSON messages to a durable topic
// exchange. The routing key is the notification kind, so consumers bind
// with patterns such as "order.*".
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	pub      publisher
	exchange string
}

// DialAMQPNotifier connects to url and declares exchange.
func DialAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	n := newAMQPNotifier(ch, exchange)
	n.conn = conn
	n.channel = ch
	return n, nil
}

func newAMQPNotifier(pub publisher, exchange string) *AMQPNotifier {
	return &AMQPNotifier{pub: pub, exchange: exchange}
}

func (n *AMQPNotifier) Notify(ctx context.Context, msg notification.Notification) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return n.pub.PublishWithContext(ctx,
		n.exchange,
		string(msg.Kind),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.ID.String(),
			Timestamp:    msg.OccurredAt,
			Type:         string(msg.Kind),
			Body:         body,
		},
	)
}

func (n *AMQPNotifier) Close() error {
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			return err
		}
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
