package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"booq/internal/adapters/booklooker"
	"booq/internal/adapters/filesystem"
	mcpadapter "booq/internal/adapters/mcp"
	"booq/internal/adapters/slogreport"
	"booq/internal/adapters/wordpress"
	"booq/internal/application/commands"
	"booq/internal/config"
)

func main() {
	configFile := flag.String("config", "", "config file")
	verbose := flag.Bool("verbose", false, "debug logging")
	readOnly := flag.Bool("read-only", false, "only register tools that change nothing")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	reporter := slogreport.NewText(os.Stderr, *verbose)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("booq-mcp: %v", err)
	}
	for _, w := range cfg.Warnings() {
		reporter.Warn("%s", w)
	}
	if err := cfg.Validate(); err != nil {
		// classify_filename works without credentials
		reporter.Warn("%v", err)
	}

	newSync := func() *commands.SyncCommand {
		return commands.NewSyncCommand(
			booklooker.NewClient(booklooker.DefaultBaseURL),
			wordpress.NewEnricher(),
			filesystem.NewImageStore(cfg.OutputPath),
			filesystem.NewOutputTree(),
			reporter,
			cfg.ToSyncOptions(),
		)
	}

	mcpServer := server.NewMCPServer(
		"booq-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, cfg.Prefixes, newSync)
	if !*readOnly {
		mcpadapter.RegisterWriteTools(mcpServer, newSync)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("booq-mcp: %v", err)
	}
}
