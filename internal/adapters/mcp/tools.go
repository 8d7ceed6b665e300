package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"booq/internal/application/commands"
	"booq/internal/domain"
)

// SyncFactory builds a fresh sync command for each tool call
type SyncFactory func() *commands.SyncCommand

// RegisterReadTools adds the tools that never touch the gallery folder.
func RegisterReadTools(s *server.MCPServer, prefixes []string, newSync SyncFactory) {
	s.AddTool(classifyTool(), classifyHandler(prefixes))
	s.AddTool(planTool(), planHandler(newSync))
}

// RegisterWriteTools adds the tools that reconcile and publish.
func RegisterWriteTools(s *server.MCPServer, newSync SyncFactory) {
	s.AddTool(syncTool(), syncHandler(newSync))
}

// --- classify_filename ---

func classifyTool() mcp.Tool {
	return mcp.NewTool("classify_filename",
		mcp.WithDescription("Classify an image filename: managed or foreign, its item key, and whether it is a duplicate variant that sync would delete."),
		mcp.WithString("filename",
			mcp.Description("Image filename, e.g. BN00561.jpg"),
			mcp.Required(),
		),
	)
}

func classifyHandler(prefixes []string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename := req.GetString("filename", "")
		if filename == "" {
			return toolError(fmt.Errorf("filename is required"))
		}
		return mcp.NewToolResultText(formatClassification(filename, domain.Classify(filename, prefixes))), nil
	}
}

func formatClassification(filename string, c domain.Classification) string {
	switch {
	case !c.Managed:
		return fmt.Sprintf("%s: foreign (never touched)", filename)
	case c.Duplicate:
		return fmt.Sprintf("%s: duplicate variant (deleted on sync)", filename)
	default:
		key, _ := c.Key.Get()
		return fmt.Sprintf("%s: managed, key %s", filename, key)
	}
}

// --- plan_sync ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan_sync",
		mcp.WithDescription("Dry run: fetch the catalog, plan the image cleanup and show the gallery that would be published. Nothing is changed."),
	)
}

func planHandler(newSync SyncFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		plan, err := newSync().Plan(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(FormatPlan(plan)), nil
	}
}

// --- sync_gallery ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync_gallery",
		mcp.WithDescription("Reconcile the image folder with the catalog (delete duplicates, archive sold items) and publish the gallery page."),
	)
}

func syncHandler(newSync SyncFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := newSync().Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(FormatPlan(result.Plan))
		fmt.Fprintf(&sb, "\nPublished %d images to %s (%d copied)\n",
			result.Publish.Total, result.Publish.IndexPath, result.Publish.Copied)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// FormatPlan renders a sync plan as plain text
func FormatPlan(plan *commands.SyncPlan) string {
	var sb strings.Builder
	s := plan.Reconcile.Stats
	fmt.Fprintf(&sb, "Source: %s\n", plan.Source)
	fmt.Fprintf(&sb, "Active listings: %d\n", plan.Inventory.Len())
	fmt.Fprintf(&sb, "Delete: %d  Archive: %d  Skip: %d  Keep: %d\n", s.Deleted, s.Moved, s.Skipped, s.Kept)

	for _, a := range plan.Reconcile.Pending() {
		fmt.Fprintf(&sb, "  %-7s %s\n", a.Kind, a.Asset.Filename)
	}
	for _, err := range plan.Degraded {
		fmt.Fprintf(&sb, "Degraded: %v\n", err)
	}
	fmt.Fprintf(&sb, "Gallery tiles: %d\n", len(plan.Preview.Items))
	return sb.String()
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
