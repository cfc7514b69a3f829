// SPDX-License-Identifier: MIT

// Package mcpserver exposes the calculators as Model Context Protocol tools.
//
// Every tool accepts matrices as arrays of rows of numbers, runs one calc
// engine and returns structured output: rationals as "a/b" strings with
// decimal approximations, LaTeX for every matrix, and the derivation as a
// flat list of steps (depth 0 for top-level steps).
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/internal/config"
)

// Name is the MCP implementation name.
const Name = "linsteps"

// Server is a configured MCP server with every calculator tool registered.
type Server struct {
	cfg    config.Config
	log    *slog.Logger
	server *mcp.Server
}

// New builds the server. A nil logger discards logs.
func New(cfg config.Config, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		server: mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil),
	}
	s.registerTools()

	return s
}

// Run serves MCP over transport until the client disconnects or ctx ends.
// Cancellation is a clean shutdown, not an error.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.log.Info("mcp server starting", "name", Name)
	err := s.server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	s.log.Info("mcp server stopped")

	return nil
}

// RunStdio serves MCP over stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, InverseTool(), s.inverseHandler())
	mcp.AddTool(s.server, RREFTool(), s.rrefHandler())
	mcp.AddTool(s.server, DeterminantTool(), s.determinantHandler())
	mcp.AddTool(s.server, RankTool(), s.rankHandler())
	mcp.AddTool(s.server, MultiplyTool(), s.multiplyHandler())
	mcp.AddTool(s.server, SolveTool(), s.solveHandler())
	mcp.AddTool(s.server, CramerTool(), s.cramerHandler())
	mcp.AddTool(s.server, PowerTool(), s.powerHandler())
}

// options resolves engine options for one call; lang overrides the configured language.
func (s *Server) options(lang string) []calc.Option {
	if lang == "" {
		lang = s.cfg.Language
	}

	return append(s.cfg.CalcOptions(), calc.WithLanguage(i18n.Match(lang)))
}

// fail logs and wraps a tool error; the SDK reports it to the client as a tool error.
func (s *Server) fail(tool string, err error) error {
	s.log.Debug("tool call rejected", "tool", tool, "error", err)

	return fmt.Errorf("%s: %w", tool, err)
}
