package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - некорректные входные данные, запрос в сеть не отправлялся
	ErrValidation = errors.New("validation failed")
	// ErrTransport - сетевая ошибка, таймаут или некорректный ответ
	ErrTransport = errors.New("transport failure")
	// ErrAuth - бэкенд ответил 401/403
	ErrAuth = errors.New("not authorized")
	// ErrFetch - прочие ответы не из диапазона 2xx
	ErrFetch = errors.New("backend request failed")

	ErrJobActive       = errors.New("an upload is already in progress")
	ErrJobSuperseded   = errors.New("upload result discarded after reset")
	ErrUnknownIncident = errors.New("incident not found")
	ErrNotPending      = errors.New("incident is not pending")
	ErrUpdateInFlight  = errors.New("status update already in flight")

	ErrUnknownNotification = errors.New("notification not found")
)

// ServerReportedError - корректный ответ сервиса анализа с полем error
type ServerReportedError struct {
	Message string
}

func (e *ServerReportedError) Error() string {
	return fmt.Sprintf("analysis service reported an error: %s", e.Message)
}
