package messagestream_test

import (
	"testing"

	"rental-service/config"
	"rental-service/internal/pkg/messagestream"

	"github.com/stretchr/testify/assert"
)

func unreachable() *messagestream.Ampq {
	return messagestream.NewAmpq(&config.MessageStreamConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "guest",
		Password: "guest",
	})
}

func TestNewPublisherUnreachableBroker(t *testing.T) {
	pub, err := unreachable().NewPublisher()
	assert.Error(t, err)
	// a typed nil inside the interface would slip past the publish guards
	assert.True(t, pub == nil)
}

func TestNewSubscriberUnreachableBroker(t *testing.T) {
	sub, err := unreachable().NewSubscriber()
	assert.Error(t, err)
	assert.True(t, sub == nil)
}
