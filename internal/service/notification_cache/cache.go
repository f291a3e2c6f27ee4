package notification_cache

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"tracking-service/internal/entities"
	"tracking-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type request struct {
	ctx    context.Context
	apply  func(ctx context.Context) error
	result chan error
}

type subscriber struct {
	push  func(*snapshot)
	close func()
}

// Cache - локальная копия ленты уведомлений.
//
// Все изменения (ReplaceAll, MarkRead, Load) проходят через одну горутину-applier
// в порядке поступления. Каждое изменение сначала фиксируется в postgres, затем
// публикуется новый неизменяемый snapshot. Читатели видят либо старый, либо
// новый набор целиком.
type Cache struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager

	current atomic.Pointer[snapshot]

	requests  chan request
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	subsMu sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

func New(log handlerLogger, repository Repository, txManager TxManager) *Cache {
	c := &Cache{
		log:        log,
		repository: repository,
		txManager:  txManager,
		requests:   make(chan request),
		quit:       make(chan struct{}),
		stopped:    make(chan struct{}),
		subs:       make(map[*subscriber]struct{}),
	}
	c.current.Store(newSnapshot(nil))

	go c.run()
	return c
}

// Close останавливает applier и закрывает каналы всех наблюдателей.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.quit)
		<-c.stopped

		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		c.closed = true
		for sub := range c.subs {
			sub.close()
			delete(c.subs, sub)
		}
		CacheObservers.Set(0)
	})
}

// Load восстанавливает кэш из таблицы после рестарта.
func (c *Cache) Load(ctx context.Context) error {
	return c.submit(ctx, func(ctx context.Context) error {
		records, err := c.repository.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("load notifications: %w", err)
		}
		sortRecords(records)
		c.publish(newSnapshot(records))
		return nil
	})
}

// ReplaceAll заменяет весь набор: delete+insert в одной транзакции, затем
// подмена snapshot. При ошибке кэш остается прежним. Повторы id (лента
// сдвигается между страницами) схлопываются, остается первое вхождение.
func (c *Cache) ReplaceAll(ctx context.Context, records []entities.Notification) error {
	prepared := c.dedupe(records)
	sortRecords(prepared)

	return c.submit(ctx, func(ctx context.Context) error {
		err := c.txManager.Do(ctx, func(ctx context.Context) error {
			if err := c.repository.DeleteAll(ctx); err != nil {
				return err
			}
			return c.repository.InsertAll(ctx, prepared)
		})
		if err != nil {
			return fmt.Errorf("replace notifications: %w", err)
		}

		c.publish(newSnapshot(prepared))
		return nil
	})
}

// MarkRead помечает запись прочитанной. Повторный вызов ничего не пишет.
func (c *Cache) MarkRead(ctx context.Context, id int64) error {
	return c.submit(ctx, func(ctx context.Context) error {
		snap := c.current.Load()

		idx, ok := snap.index[id]
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotificationNotFound, id)
		}
		if snap.records[idx].IsRead {
			return nil
		}

		if err := c.repository.MarkRead(ctx, id); err != nil {
			return fmt.Errorf("mark notification %d read: %w", id, err)
		}

		c.publish(snap.withRead(idx))
		return nil
	})
}

// Query возвращает текущий набор, новые первыми. role == nil - все записи.
func (c *Cache) Query(role *entities.Role) []entities.Notification {
	return c.current.Load().query(role)
}

func (c *Cache) UnreadCount() int {
	return c.current.Load().unread
}

// Get возвращает запись по id.
func (c *Cache) Get(id int64) (entities.Notification, bool) {
	snap := c.current.Load()
	idx, ok := snap.index[id]
	if !ok {
		return entities.Notification{}, false
	}
	return snap.records[idx], true
}

// Observe - живой список для роли. Текущее значение приходит сразу, дальше
// после каждого изменения. Медленный читатель пропускает промежуточные
// значения, но всегда получает последнее. Канал закрывается при отмене ctx
// или Close.
func (c *Cache) Observe(ctx context.Context, role *entities.Role) <-chan []entities.Notification {
	if role != nil {
		r := *role
		role = &r
	}

	out := make(chan []entities.Notification, 1)
	c.subscribe(ctx, &subscriber{
		push:  func(s *snapshot) { sendLatest(out, s.query(role)) },
		close: func() { close(out) },
	})
	return out
}

// ObserveUnreadCount - живое значение UnreadCount, семантика как у Observe.
func (c *Cache) ObserveUnreadCount(ctx context.Context) <-chan int {
	out := make(chan int, 1)
	c.subscribe(ctx, &subscriber{
		push:  func(s *snapshot) { sendLatest(out, s.unread) },
		close: func() { close(out) },
	})
	return out
}

func (c *Cache) run() {
	defer close(c.stopped)

	for {
		select {
		case <-c.quit:
			return
		case req := <-c.requests:
			req.result <- c.apply(req)
		}
	}
}

func (c *Cache) apply(req request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("notification cache write panic",
				logger.NewField("recover", r),
			)
			err = fmt.Errorf("notification cache write panic: %v", r)
		}
	}()

	if err := req.ctx.Err(); err != nil {
		return err
	}
	return req.apply(req.ctx)
}

func (c *Cache) submit(ctx context.Context, apply func(ctx context.Context) error) error {
	req := request{
		ctx:    ctx,
		apply:  apply,
		result: make(chan error, 1),
	}

	select {
	case c.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-c.quit:
		return ErrCacheClosed
	}

	// принятый запрос applier доводит до конца даже при отмене ctx вызывающего
	return <-req.result
}

func (c *Cache) publish(s *snapshot) {
	c.current.Store(s)
	CacheRecords.Set(float64(len(s.records)))
	CacheUnread.Set(float64(s.unread))

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for sub := range c.subs {
		sub.push(s)
	}
}

func (c *Cache) subscribe(ctx context.Context, sub *subscriber) {
	c.subsMu.Lock()
	if c.closed {
		c.subsMu.Unlock()
		sub.close()
		return
	}
	c.subs[sub] = struct{}{}
	CacheObservers.Set(float64(len(c.subs)))
	sub.push(c.current.Load())
	c.subsMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-c.quit:
			return
		}

		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		if _, ok := c.subs[sub]; ok {
			delete(c.subs, sub)
			sub.close()
			CacheObservers.Set(float64(len(c.subs)))
		}
	}()
}

func (c *Cache) dedupe(records []entities.Notification) []entities.Notification {
	seen := make(map[int64]struct{}, len(records))
	result := make([]entities.Notification, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			c.log.Warn("duplicate notification id in feed",
				logger.NewField("id", r.ID),
			)
			continue
		}
		seen[r.ID] = struct{}{}
		result = append(result, r)
	}
	return slices.Clip(result)
}

// sendLatest кладет v в канал с буфером 1, вытесняя непрочитанное значение.
// Вызывается только под subsMu, поэтому писатель у канала один.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
