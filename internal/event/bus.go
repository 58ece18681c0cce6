package event

import (
	"sync"

	pkglogger "github.com/dd-blog/braincleaner-backend/pkg/logger"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PostCreated 게시글 생성 커밋 이후 발행되는 이벤트
type PostCreated struct {
	Post *domain.Post
}

// PostCreatedHandler handles a PostCreated event. A returned error is
// logged and swallowed; delivery is best-effort and never affects the
// request that produced the event.
type PostCreatedHandler func(PostCreated) error

// Bus is an in-process event bus. Publication is synchronous on the
// publishing goroutine, after the originating transaction has committed.
// There is no redelivery.
type Bus struct {
	mu          sync.RWMutex
	postCreated []PostCreatedHandler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// SubscribePostCreated registers a handler for PostCreated events
func (b *Bus) SubscribePostCreated(h PostCreatedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.postCreated = append(b.postCreated, h)
}

// PublishPostCreated delivers the event to all handlers. Handler errors
// and panics are logged with the post id and do not propagate.
func (b *Bus) PublishPostCreated(e PostCreated) {
	b.mu.RLock()
	handlers := make([]PostCreatedHandler, len(b.postCreated))
	copy(handlers, b.postCreated)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(h, e)
	}
}

func (b *Bus) deliver(h PostCreatedHandler, e PostCreated) {
	defer func() {
		if r := recover(); r != nil {
			pkglogger.GetLogger().Error().
				Uint64("post_id", e.Post.ID).
				Interface("panic", r).
				Msg("post created handler panicked")
		}
	}()

	if err := h(e); err != nil {
		pkglogger.GetLogger().Error().
			Err(err).
			Uint64("post_id", e.Post.ID).
			Msg("포인트 적립 실패")
	}
}
