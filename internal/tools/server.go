// Package tools implements the MCP tool surface: job submission, status
// polling, and connectivity testing. Every handler catches all faults at
// its boundary and converts them into a human-readable result flagged as
// an error; no fault escapes to the MCP caller as a raw failure.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voxrelay/deepgram-mcp/internal/deepgram"
	"github.com/voxrelay/deepgram-mcp/internal/events"
	"github.com/voxrelay/deepgram-mcp/internal/logger"
	"github.com/voxrelay/deepgram-mcp/internal/relay"
)

const (
	serverName    = "Deepgram Async Transcription"
	serverVersion = "2.0.0"

	// defaultModel is the baseline transcription model used when the
	// caller does not pick one.
	defaultModel = "nova-3"

	toolSubmit = "submit_transcription_job"
	toolStatus = "check_job_status"
	toolTest   = "test_deepgram_connection"
)

// Server holds the tool handlers' collaborators.
type Server struct {
	dg     *deepgram.Client
	relay  *relay.Client
	events *events.Emitter
	log    *logger.Logger
}

// NewServer creates the tool server.
func NewServer(dg *deepgram.Client, rl *relay.Client, em *events.Emitter, log *logger.Logger) *Server {
	return &Server{
		dg:     dg,
		relay:  rl,
		events: em,
		log:    log.WithComponent("tools"),
	}
}

// MCPServer builds the MCP server with all three tools registered.
func (s *Server) MCPServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name: toolSubmit,
		Description: "Submit an audio or video URL for async transcription with Deepgram. " +
			"Returns a request_id for checking status and retrieving results. " +
			"Suited to long videos and podcasts that would time out synchronously.",
	}, s.SubmitTranscriptionJob)

	mcp.AddTool(srv, &mcp.Tool{
		Name: toolStatus,
		Description: "Check the status of a transcription job and retrieve the transcript " +
			"when ready. Poll every 30 seconds until the transcript is available.",
	}, s.CheckJobStatus)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        toolTest,
		Description: "Test the connection to the Deepgram API and the webhook relay.",
	}, s.TestConnection)

	return srv
}

// textResult wraps text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps text in a tool result flagged as an error.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
