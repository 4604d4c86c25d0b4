package messagestream

import (
	"fmt"
	"time"

	"rental-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
)

const (
	TopicNotification = "notification"
	TopicPoisoned     = "poisoned_queue"
)

type Ampq struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Ampq{
		cfg:    amqp.NewDurablePubSubConfig(uri, amqp.GenerateQueueNameTopicNameWithSuffix("rental-service")),
		logger: watermill.NewStdLogger(false, false),
	}
}

// NewSubscriber returns an untyped nil on error so callers can compare against nil.
func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	sub, err := amqp.NewSubscriber(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// NewPublisher returns an untyped nil on error so callers can compare against nil.
func (a *Ampq) NewPublisher() (message.Publisher, error) {
	pub, err := amqp.NewPublisher(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// NewRouter wires a single consumer; failed messages end up on poisonTopic.
func NewRouter(pub message.Publisher, poisonTopic, handlerName, topic string, sub message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, topic, sub, handlerFunc)

	return router, nil
}

// Publish encodes payload as JSON and sends it to topic.
func Publish(pub message.Publisher, topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return pub.Publish(topic, message.NewMessage(watermill.NewUUID(), body))
}
