package entities

import (
	"errors"
	"fmt"
)

// Базовые классы ошибок. Ошибки компонентов оборачивают один из них,
// вызывающая сторона ветвится через errors.Is.
var (
	// ErrValidation - некорректный ввод, отклоняется до любого I/O
	ErrValidation = errors.New("validation error")
	// ErrTransientFailure - сеть/таймаут, можно повторить снаружи
	ErrTransientFailure = errors.New("transient failure")
	// ErrUpstreamData - битый или пустой ответ внешнего сервиса
	ErrUpstreamData = errors.New("upstream data error")
	// ErrSync - любой сбой при синхронизации кэша уведомлений
	ErrSync = errors.New("sync error")
)

// ErrInvalidCoordinate - широта вне [-90,90] или долгота вне [-180,180].
var ErrInvalidCoordinate = fmt.Errorf("invalid coordinate: %w", ErrValidation)
