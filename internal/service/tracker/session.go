package tracker

import (
	"context"
	"sync"

	"tracking-service/internal/entities"
)

// Session - одна запущенная подписка на точку заказа.
// Канал хранит только последнюю точку: медленный читатель пропускает промежуточные.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	stopped   bool
	positions chan entities.Position
}

func newSession(parent context.Context) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		ctx:       ctx,
		cancel:    cancel,
		positions: make(chan entities.Position, 1),
	}
}

// Positions закрывается при Stop.
func (s *Session) Positions() <-chan entities.Position {
	return s.positions
}

// Done закрывается при Stop или отмене родительского контекста.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Stop можно вызывать из любой горутины и сколько угодно раз. Не ждет
// запроса в полете: его контекст отменяется, а результат отбрасывается.
// После возврата Stop новых точек в канале не появится.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.cancel()
	close(s.positions)
}

// emit не блокируется: устаревшая непрочитанная точка вытесняется новой.
func (s *Session) emit(p entities.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	select {
	case <-s.positions:
	default:
	}
	s.positions <- p
}
