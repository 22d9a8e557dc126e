// Command server runs the Deepgram async transcription MCP server.
//
// Default transport is stdio; set server.transport to "http" to expose the
// streamable HTTP transport instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voxrelay/deepgram-mcp/internal/config"
	"github.com/voxrelay/deepgram-mcp/internal/deepgram"
	"github.com/voxrelay/deepgram-mcp/internal/events"
	"github.com/voxrelay/deepgram-mcp/internal/logger"
	"github.com/voxrelay/deepgram-mcp/internal/relay"
	"github.com/voxrelay/deepgram-mcp/internal/tools"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ServiceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, config.ServiceName)

	dg, err := deepgram.NewClient(cfg.Deepgram)
	if err != nil {
		return err
	}

	rl, err := relay.NewClient(cfg.Relay)
	if err != nil {
		return err
	}

	em := events.NewEmitter(log, rl.LogURL())
	defer em.Close()

	srv := tools.NewServer(dg, rl, em, log).MCPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", logger.Fields(
		"transport", cfg.Server.Transport,
		"callback_url", rl.CallbackURL(),
	))

	switch cfg.Server.Transport {
	case "http":
		return runHTTP(ctx, srv, cfg.Server.Addr, log)
	default:
		return srv.Run(ctx, &mcp.StdioTransport{})
	}
}

// runHTTP serves the streamable HTTP transport plus a health route.
func runHTTP(ctx context.Context, srv *mcp.Server, addr string, log *logger.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
	router.Any("/mcp", gin.WrapH(handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpSrv := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info("http transport listening", logger.Fields("addr", addr))
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
