// cmd/verinews/errors.go
package main

import (
	"fmt"
	"sync"
	"time"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeProvider ErrorType = "provider"
	ErrorTypeVerify   ErrorType = "verify"
	ErrorTypeAI       ErrorType = "ai"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeAPI      ErrorType = "api"
	ErrorTypeInternal ErrorType = "internal"
)

// Error codes
const (
	ErrProviderFetch   = "PROVIDER_001"
	ErrProviderParse   = "PROVIDER_002"
	ErrProviderLimited = "PROVIDER_003"

	ErrVerifyScoring = "VERIFY_001"

	ErrAIUnavailable = "AI_001"
	ErrAIResponse    = "AI_002"

	ErrConfigLoad       = "CONFIG_001"
	ErrConfigValidation = "CONFIG_002"

	ErrAPIBadRequest = "API_001"
)

// VeriError is the custom error type for the application
type VeriError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Inner   error     `json:"-"`
}

func (e *VeriError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

func (e *VeriError) Unwrap() error { return e.Inner }

// NewError creates a new VeriError
func NewError(errType ErrorType, code string, message string, inner error) *VeriError {
	return &VeriError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// Common error constructors
func NewProviderError(code string, message string, inner error) *VeriError {
	return NewError(ErrorTypeProvider, code, message, inner)
}

func NewConfigError(code string, message string, inner error) *VeriError {
	return NewError(ErrorTypeConfig, code, message, inner)
}

func NewAIError(code string, message string, inner error) *VeriError {
	return NewError(ErrorTypeAI, code, message, inner)
}

// ErrorEvent represents a recorded error event
type ErrorEvent struct {
	Type      ErrorType `json:"type"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Component string    `json:"component"`
	Time      time.Time `json:"time"`
}

// ErrorBuffer keeps a bounded in-memory record of recent errors for the
// health endpoint.
type ErrorBuffer struct {
	mutex  sync.Mutex
	events []ErrorEvent
	max    int
}

// NewErrorBuffer creates an error buffer holding up to max events
func NewErrorBuffer(max int) *ErrorBuffer {
	return &ErrorBuffer{
		events: make([]ErrorEvent, 0, max),
		max:    max,
	}
}

// Record stores an error event, evicting the oldest when full
func (b *ErrorBuffer) Record(err error, component string) {
	if err == nil {
		return
	}

	event := ErrorEvent{
		Type:      ErrorTypeInternal,
		Code:      "INTERNAL_001",
		Message:   err.Error(),
		Component: component,
		Time:      time.Now(),
	}
	if ve, ok := err.(*VeriError); ok {
		event.Type = ve.Type
		event.Code = ve.Code
		event.Message = ve.Message
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.events = append(b.events, event)
	if len(b.events) > b.max {
		b.events = b.events[1:]
	}
}

// Recent returns up to count most recent error events, newest first
func (b *ErrorBuffer) Recent(count int) []ErrorEvent {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if count > len(b.events) {
		count = len(b.events)
	}
	out := make([]ErrorEvent, 0, count)
	for i := len(b.events) - 1; i >= len(b.events)-count; i-- {
		out = append(out, b.events[i])
	}
	return out
}

// Len returns the number of buffered events
func (b *ErrorBuffer) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.events)
}
