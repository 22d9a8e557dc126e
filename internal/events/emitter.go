// Package events emits structured operational events: synchronously to the
// local log, and best-effort to the relay's log sink. Remote delivery is
// fire-and-forget: its outcome is discarded so that logging can never
// fail or stall a tool invocation.
package events

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/voxrelay/deepgram-mcp/internal/logger"
)

const deliveryTimeout = 2 * time.Second

// Canonical event names.
const (
	EventRequestReceived = "request_received"
	EventResponseSent    = "response_sent"
	EventExternalCall    = "external_api_call"
	EventStillProcessing = "still_processing"
	EventError           = "error"
)

// Emitter mirrors events to the local log and to a remote collector.
type Emitter struct {
	log      *logger.Logger
	endpoint string
	client   *http.Client
	wg       sync.WaitGroup
}

// NewEmitter creates an emitter. An empty endpoint disables remote delivery.
func NewEmitter(log *logger.Logger, endpoint string) *Emitter {
	return &Emitter{
		log:      log.WithComponent("events"),
		endpoint: endpoint,
		client:   &http.Client{Timeout: deliveryTimeout},
	}
}

// Emit records an event locally and dispatches it to the remote collector
// without awaiting the result. It returns before delivery completes and
// never reports delivery failure.
func (e *Emitter) Emit(event string, fields map[string]interface{}) {
	e.log.Info(event, fields)

	if e.endpoint == "" {
		return
	}

	entry := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		entry[k] = v
	}
	entry["event"] = event
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(entry)
	if err != nil {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		resp, err := e.client.Post(e.endpoint, "application/json", bytes.NewReader(payload))
		if err != nil {
			// Delivery failure is discarded so logging cannot break the
			// request being logged.
			return
		}
		_ = resp.Body.Close()
	}()
}

// Close waits for in-flight deliveries. Used at shutdown and in tests;
// never on the emit path.
func (e *Emitter) Close() {
	e.wg.Wait()
}

// RequestReceived records a tool invocation with sanitized parameters.
func (e *Emitter) RequestReceived(tool, correlationID string, params map[string]interface{}) {
	fields := map[string]interface{}{
		logger.FieldTool:          tool,
		logger.FieldCorrelationID: correlationID,
	}
	if params != nil {
		fields["params"] = Sanitize(params)
	}
	e.Emit(EventRequestReceived, fields)
}

// ResponseSent records a completed tool invocation.
func (e *Emitter) ResponseSent(tool, correlationID string, duration time.Duration, responseSize int) {
	e.Emit(EventResponseSent, map[string]interface{}{
		logger.FieldTool:          tool,
		logger.FieldCorrelationID: correlationID,
		logger.FieldDuration:      duration.Milliseconds(),
		"response_size_bytes":     responseSize,
	})
}

// ExternalCall records a call to a remote service.
func (e *Emitter) ExternalCall(service, correlationID string, duration time.Duration, status int) {
	e.Emit(EventExternalCall, map[string]interface{}{
		logger.FieldService:       service,
		logger.FieldCorrelationID: correlationID,
		logger.FieldDuration:      duration.Milliseconds(),
		logger.FieldStatus:        status,
	})
}

// Error records a failed tool invocation.
func (e *Emitter) Error(tool, correlationID string, err error) {
	e.Emit(EventError, map[string]interface{}{
		logger.FieldTool:          tool,
		logger.FieldCorrelationID: correlationID,
		logger.FieldError:         err.Error(),
	})
}
