// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes GTD vault resources and tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
	"github.com/peerjakobsen/md-gtd-mcp/internal/resource"
	"github.com/peerjakobsen/md-gtd-mcp/internal/vault"
)

const serverInstructions = `This server reads Getting Things Done (GTD) markdown vaults.

Resource URI patterns (read-only):
  gtd://{vault_path}/files              - list GTD files with metadata
  gtd://{vault_path}/files/{type}       - list files of one type
  gtd://{vault_path}/file/{path}        - read one file with full parsing
  gtd://{vault_path}/content            - read all files with full content
  gtd://{vault_path}/content/{type}     - read files of one type with content

File types: inbox, projects, next-actions, waiting-for, someday-maybe, context.

Tools (write path): setup_gtd_vault creates the folder structure safely,
capture_inbox_item appends a raw item to the inbox. Checkbox lines in the
inbox are raw captures; in every other file a task line must carry the #task
tag to count as an action.`

// Server wraps the MCP server with GTD vault resources and tools.
type Server struct {
	mcp     *server.MCPServer
	handler *resource.Handler
	layout  vault.Layout
}

// New creates a new MCP server with all vault resources and tools registered.
func New(layout vault.Layout) *Server {
	s := &Server{
		handler: &resource.Handler{Layout: layout},
		layout:  layout,
	}

	s.mcp = server.NewMCPServer(
		"Markdown GTD",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions(serverInstructions),
	)

	s.mcp.AddTool(mcp.NewTool("setup_gtd_vault",
		mcp.WithDescription("Create the GTD folder structure and template files if missing. "+
			"Never overwrites existing files."),
		mcp.WithString("vault_path", mcp.Required(), mcp.Description("Path to the vault directory")),
	), s.setupVault)

	s.mcp.AddTool(mcp.NewTool("capture_inbox_item",
		mcp.WithDescription("Append a raw item to the inbox as '- [ ] {text}'. Capture phase: "+
			"no tags or contexts are added; triage happens later."),
		mcp.WithString("vault_path", mcp.Required(), mcp.Description("Path to the vault directory")),
		mcp.WithString("item_text", mcp.Required(), mcp.Description("Text to capture")),
	), s.captureInboxItem)

	s.mcp.AddTool(mcp.NewTool("list_gtd_files",
		mcp.WithDescription("List GTD files with metadata only (no content). "+
			"Optionally filter by file type."),
		mcp.WithString("vault_path", mcp.Required(), mcp.Description("Path to the vault directory")),
		mcp.WithString("file_type", mcp.Description("Optional type filter (inbox, projects, next-actions, waiting-for, someday-maybe, context)")),
	), s.listFiles)

	s.mcp.AddTool(mcp.NewTool("read_gtd_file",
		mcp.WithDescription("Read a single GTD file with parsed frontmatter, tasks, and links."),
		mcp.WithString("vault_path", mcp.Required(), mcp.Description("Path to the vault directory")),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Vault-relative file path (e.g. gtd/inbox.md)")),
	), s.readFile)

	s.mcp.AddTool(mcp.NewTool("read_gtd_files",
		mcp.WithDescription("Read all GTD files with full content and parsing. "+
			"Optionally filter by file type."),
		mcp.WithString("vault_path", mcp.Required(), mcp.Description("Path to the vault directory")),
		mcp.WithString("file_type", mcp.Description("Optional type filter")),
	), s.readFiles)

	s.mcp.AddTool(mcp.NewTool("get_task_format",
		mcp.WithDescription("Returns the canonical GTD task line format. Call this before "+
			"writing task lines to ensure annotations parse correctly."),
	), s.getTaskFormat)

	s.mcp.AddResource(
		mcp.NewResource("gtd://task-format", "GTD Task Format Contract",
			mcp.WithResourceDescription("Canonical task line format with all annotation tokens."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readTaskFormatResource,
	)

	s.addResourceTemplate("gtd://{+vault}/files", "GTD File Listings",
		"List GTD files in a vault with metadata for discovery.")
	s.addResourceTemplate("gtd://{+vault}/files/{type}", "GTD Filtered File Listings",
		"List GTD files of one type with metadata.")
	s.addResourceTemplate("gtd://{+vault}/file/{+path}", "GTD Single File Reader",
		"Read one GTD file with complete content, tasks, and links.")
	s.addResourceTemplate("gtd://{+vault}/content", "GTD Complete Content Reader",
		"Read all GTD files with comprehensive content.")
	s.addResourceTemplate("gtd://{+vault}/content/{type}", "GTD Filtered Content Reader",
		"Read GTD files of one type with comprehensive content.")

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// addResourceTemplate registers one gtd:// URI template. Every template is
// served by the same handler: the raw request URI is re-parsed by the
// resource router, which keeps all five variants on one code path.
func (s *Server) addResourceTemplate(uriTemplate, name, description string) {
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(uriTemplate, name,
			mcp.WithTemplateDescription(description),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.readVaultResource,
	)
}

func (s *Server) readVaultResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	parsed, err := resource.ParseURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	payload, err := s.handler.Handle(parsed)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     payload,
		},
	}, nil
}

func (s *Server) setupVault(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vaultPath, err := req.RequireString("vault_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := vault.Setup(vaultPath, s.layout)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) captureInboxItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vaultPath, err := req.RequireString("vault_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemText, err := req.RequireString("item_text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rel, err := vault.Capture(vaultPath, s.layout, itemText)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("captured to %s", rel)), nil
}

func (s *Server) listFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vaultPath, err := req.RequireString("vault_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := s.handler.Files(vaultPath, optionalFileType(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(payload), nil
}

func (s *Server) readFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vaultPath, err := req.RequireString("vault_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filePath, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := s.handler.File(vaultPath, filePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(payload), nil
}

func (s *Server) readFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vaultPath, err := req.RequireString("vault_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := s.handler.Content(vaultPath, optionalFileType(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(payload), nil
}

func (s *Server) getTaskFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(TaskFormatContract), nil
}

func (s *Server) readTaskFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "gtd://task-format",
			MIMEType: "text/markdown",
			Text:     TaskFormatContract,
		},
	}, nil
}

func optionalFileType(req mcp.CallToolRequest) models.FileType {
	if ft, err := req.RequireString("file_type"); err == nil {
		return models.FileType(ft)
	}
	return ""
}
