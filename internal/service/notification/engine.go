package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"tracking-service/internal/entities"
	"tracking-service/pkg/logger"
)

const refreshKey = "refresh"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Config struct {
	// PageSize - limit одного запроса ленты
	PageSize int
	// MaxPages - предел страниц за один цикл, защита от бесконечной ленты
	MaxPages int
}

// Status - состояние синхронизации для диагностики.
type Status struct {
	State      entities.SyncState
	LastSyncAt time.Time
	LastError  error
}

// Engine сверяет локальный кэш с удаленной лентой полной заменой.
// Сервер - источник истины для содержимого, локально допускается только
// оптимистичная отметка о прочтении до следующего обновления.
//
// Ошибки проверки аргументов (entities.ErrValidation) и ErrForbidden
// возвращаются без entities.ErrSync: до сервера и кэша дело не дошло.
// Все остальные сбои операций обернуты в entities.ErrSync.
type Engine struct {
	log     handlerLogger
	gateway Gateway
	cache   Cache
	config  Config
	now     func() time.Time

	group singleflight.Group

	mu     sync.RWMutex
	status Status
}

func New(log handlerLogger, gateway Gateway, cache Cache, config Config) *Engine {
	if config.PageSize <= 0 {
		config.PageSize = 50
	}
	if config.MaxPages <= 0 {
		config.MaxPages = 1
	}

	return &Engine{
		log:     log,
		gateway: gateway,
		cache:   cache,
		config:  config,
		now:     time.Now,
		status:  Status{State: entities.SyncIdle},
	}
}

func (e *Engine) State() entities.SyncState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status.State
}

func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// Refresh выполняет цикл Idle -> Fetching -> ReplacingLocal -> Idle.
// Параллельные вызовы разделяют один цикл. Отмена ctx освобождает
// вызывающего, но не прерывает уже начатый цикл.
func (e *Engine) Refresh(ctx context.Context) error {
	ch := e.group.DoChan(refreshKey, func() (any, error) {
		return nil, e.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: refresh: %w", entities.ErrSync, ctx.Err())
	case res := <-ch:
		return res.Err
	}
}

func (e *Engine) refresh(ctx context.Context) error {
	start := e.now()
	defer func() {
		SyncRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	e.setState(entities.SyncFetching)
	records, err := e.fetchAll(ctx)
	if err != nil {
		return e.fail(fmt.Errorf("fetch feed: %w", err))
	}

	e.setState(entities.SyncReplacingLocal)
	if err := e.cache.ReplaceAll(ctx, records); err != nil {
		return e.fail(fmt.Errorf("replace local: %w", err))
	}

	e.mu.Lock()
	e.status = Status{
		State:      entities.SyncIdle,
		LastSyncAt: e.now(),
	}
	e.mu.Unlock()

	SyncRefreshTotal.WithLabelValues("ok").Inc()
	e.log.Info("notifications refreshed", logger.NewField("count", len(records)))
	return nil
}

// fetchAll идет по страницам до короткой страницы или предела MaxPages.
func (e *Engine) fetchAll(ctx context.Context) ([]entities.Notification, error) {
	var records []entities.Notification

	for page := range e.config.MaxPages {
		feed, err := e.gateway.GetFeed(ctx, e.config.PageSize, page*e.config.PageSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if feed == nil {
			return nil, fmt.Errorf("page %d: empty response: %w", page, entities.ErrUpstreamData)
		}

		records = append(records, e.knownRoles(feed.Notifications)...)
		if len(feed.Notifications) < e.config.PageSize {
			return records, nil
		}
	}

	e.log.Warn("notification feed truncated",
		logger.NewField("pages", e.config.MaxPages),
		logger.NewField("page_size", e.config.PageSize),
	)
	return records, nil
}

// knownRoles отбрасывает записи с ролью, которую локальная таблица не хранит.
func (e *Engine) knownRoles(records []entities.Notification) []entities.Notification {
	kept := make([]entities.Notification, 0, len(records))
	for _, r := range records {
		if !r.Role.IsValidTarget() {
			SyncSkippedTotal.WithLabelValues("unknown_role").Inc()
			e.log.Warn("notification with unknown role skipped",
				logger.NewField("notification_id", r.ID),
				logger.NewField("role", r.Role),
			)
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// fail фиксирует ошибку цикла и возвращает движок в Idle.
func (e *Engine) fail(err error) error {
	e.mu.Lock()
	e.status.State = entities.SyncFailed
	e.status.LastError = err
	e.mu.Unlock()

	SyncRefreshTotal.WithLabelValues("failed").Inc()
	e.log.Warn("notification refresh failed", logger.NewField("error", err))

	e.setState(entities.SyncIdle)
	return fmt.Errorf("%w: refresh: %w", entities.ErrSync, err)
}

func (e *Engine) setState(state entities.SyncState) {
	e.mu.Lock()
	e.status.State = state
	e.mu.Unlock()
}

// MarkRead сначала отмечает запись локально, затем подтверждает на сервере.
// Сбой подтверждения не откатывает локальную отметку.
func (e *Engine) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNotificationID, id)
	}

	if err := e.cache.MarkRead(ctx, id); err != nil {
		SyncMarkReadTotal.WithLabelValues("local_failed").Inc()
		return fmt.Errorf("%w: mark read local: %w", entities.ErrSync, err)
	}

	if err := e.gateway.MarkRead(ctx, id); err != nil {
		SyncMarkReadTotal.WithLabelValues("remote_failed").Inc()
		e.log.Warn("mark read not confirmed by server",
			logger.NewField("notification_id", id),
			logger.NewField("error", err),
		)
		return fmt.Errorf("%w: %w: %w", entities.ErrSync, ErrNotConfirmed, err)
	}

	SyncMarkReadTotal.WithLabelValues("ok").Inc()
	return nil
}

// Broadcast рассылает уведомление роли target. Доступно только admin.
func (e *Engine) Broadcast(ctx context.Context, caller entities.Role, broadcast entities.Broadcast) error {
	if caller != entities.RoleAdmin {
		return fmt.Errorf("%w: caller %q", ErrForbidden, caller)
	}

	broadcast.Title = strings.TrimSpace(broadcast.Title)
	broadcast.Body = strings.TrimSpace(broadcast.Body)
	if err := validateBroadcast(broadcast); err != nil {
		return err
	}

	if err := e.gateway.Broadcast(ctx, broadcast); err != nil {
		e.log.Warn("broadcast failed",
			logger.NewField("target_role", broadcast.TargetRole),
			logger.NewField("error", err),
		)
		return fmt.Errorf("%w: broadcast: %w", entities.ErrSync, err)
	}

	e.log.Info("broadcast sent", logger.NewField("target_role", broadcast.TargetRole))
	return nil
}

func validateBroadcast(b entities.Broadcast) error {
	var errs []error
	if b.Title == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if b.Body == "" {
		errs = append(errs, errors.New("body is empty"))
	}
	if !b.TargetRole.IsValidTarget() {
		errs = append(errs, fmt.Errorf("unknown target role %q", b.TargetRole))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBroadcast, errors.Join(errs...))
	}
	return nil
}
