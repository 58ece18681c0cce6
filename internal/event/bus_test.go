package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

func TestPublishPostCreated_DeliversToAllHandlers(t *testing.T) {
	bus := NewBus()
	var first, second []uint64

	bus.SubscribePostCreated(func(e PostCreated) error {
		first = append(first, e.Post.ID)
		return nil
	})
	bus.SubscribePostCreated(func(e PostCreated) error {
		second = append(second, e.Post.ID)
		return nil
	})

	bus.PublishPostCreated(PostCreated{Post: &domain.Post{ID: 7}})

	assert.Equal(t, []uint64{7}, first)
	assert.Equal(t, []uint64{7}, second)
}

func TestPublishPostCreated_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	called := false

	bus.SubscribePostCreated(func(e PostCreated) error {
		return errors.New("accrual failed")
	})
	bus.SubscribePostCreated(func(e PostCreated) error {
		called = true
		return nil
	})

	bus.PublishPostCreated(PostCreated{Post: &domain.Post{ID: 1}})
	assert.True(t, called)
}

func TestPublishPostCreated_HandlerPanicRecovered(t *testing.T) {
	bus := NewBus()

	bus.SubscribePostCreated(func(e PostCreated) error {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		bus.PublishPostCreated(PostCreated{Post: &domain.Post{ID: 1}})
	})
}

func TestPublishPostCreated_NoHandlers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.PublishPostCreated(PostCreated{Post: &domain.Post{ID: 1}})
	})
}
