package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voxrelay/deepgram-mcp/internal/events"
	"github.com/voxrelay/deepgram-mcp/internal/logger"
	"github.com/voxrelay/deepgram-mcp/internal/relay"
)

// StatusInput is the check_job_status tool input.
type StatusInput struct {
	RequestID string `json:"request_id" jsonschema:"the request ID returned by submit_transcription_job"`
}

// CheckJobStatus polls the relay for a stored result. Three outcomes:
// a ready transcript renders a full report, a not-ready relay renders a
// still-processing notice (the expected in-flight state, not an error),
// and an unreachable relay renders an error result with the health URL.
func (s *Server) CheckJobStatus(ctx context.Context, req *mcp.CallToolRequest, in StatusInput) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	s.events.RequestReceived(toolStatus, in.RequestID, nil)

	record, err := s.relay.Fetch(ctx, in.RequestID)
	if err != nil {
		switch {
		case relay.IsNotReady(err):
			// Normal in-flight state. Logged as its own event, never as
			// an error.
			s.events.Emit(events.EventStillProcessing, map[string]interface{}{
				logger.FieldRequestID: in.RequestID,
				logger.FieldDuration:  time.Since(start).Milliseconds(),
			})
			return textResult(formatStillProcessing(in.RequestID)), nil, nil

		case relay.IsUnreachable(err):
			s.events.Error(toolStatus, in.RequestID, err)
			return errorResult(formatRelayUnreachable(in.RequestID, s.relay.TranscriptURL(in.RequestID), s.relay.HealthURL())), nil, nil

		default:
			s.events.Error(toolStatus, in.RequestID, err)
			return errorResult(formatStatusFailure(err)), nil, nil
		}
	}

	if !record.Ready() {
		return textResult("Unexpected response format from webhook relay."), nil, nil
	}

	text := formatReport(in.RequestID, record)
	s.events.ResponseSent(toolStatus, in.RequestID, time.Since(start), len(text))

	return textResult(text), nil, nil
}
