package main

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spendwell/ynab-go/internal/spool"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := newLogger(cfg.Debug)

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:     cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Logger:    logger,
		SentryDSN: cfg.SentryDSN,
	})
	if err != nil {
		log.Fatalf("failed to initialize YNAB client: %v", err)
	}
	defer client.Close()

	spooler := spool.New(cfg.OutputDir)

	impl := &mcp.Implementation{
		Name:    "ynab",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	registerTools(server, client, spooler)

	logger.Info("starting MCP server", "output_dir", cfg.OutputDir)

	// Run server over stdio transport (for Claude Desktop)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
