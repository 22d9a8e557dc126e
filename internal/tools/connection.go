package tools

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestInput is the test_deepgram_connection tool input (none).
type TestInput struct{}

// TestConnection probes Deepgram and the relay independently. Absence of
// connectivity is reported as content, not as a fault: one side being down
// never hides the other side's status.
func (s *Server) TestConnection(ctx context.Context, req *mcp.CallToolRequest, in TestInput) (*mcp.CallToolResult, any, error) {
	correlationID := uuid.NewString()
	s.events.RequestReceived(toolTest, correlationID, nil)

	deepgramOK := s.dg.TestConnection(ctx)
	relayOK := s.relay.Probe(ctx)

	return textResult(formatConnectionStatus(deepgramOK, relayOK, s.relay.CallbackURL())), nil, nil
}
