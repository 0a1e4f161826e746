package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/app"
)

// Config contains server configuration.
type Config struct {
	App           *app.App
	TransportMode string // "stdio" or "http"
	Version       string
	Logger        *zap.Logger
}

// NewServer creates an MCP server exposing the cache as tools.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "termstate",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(signInMiddleware(cfg.App.Session.IsAuthenticated))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger.Named("mcp"), cfg.TransportMode, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger.Named("mcp"), cfg.TransportMode, "outbound"))

	registerTools(server, &tools{app: cfg.App, logger: logger.Named("tools")})

	return server
}
