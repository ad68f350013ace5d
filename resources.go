package hatchmcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elnormous/contenttype"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const mimeTextPlain = "text/plain"

// registerAttributionResources adds the three attribution resources to the
// underlying server. Called exactly once, from New. Registration is
// unconditional: sentinel citations are published like any other.
func (s *Server) registerAttributionResources() {
	s.addStatic(&mcp.Resource{
		URI:         "name://" + s.moduleIdentity,
		Name:        "server_name",
		Title:       "Server name",
		Description: "Name of the server as declared by its author.",
		MIMEType:    mimeTextPlain,
	}, s.name)
	s.addStatic(&mcp.Resource{
		URI:         "citation://origin/" + s.name,
		Name:        "origin_citation",
		Title:       "Origin citation",
		Description: "Citation for the original algorithm or research this server exposes.",
		MIMEType:    mimeTextPlain,
	}, s.originCitation)
	s.addStatic(&mcp.Resource{
		URI:         "citation://mcp/" + s.name,
		Name:        "mcp_citation",
		Title:       "MCP citation",
		Description: "Citation for the MCP server implementation.",
		MIMEType:    mimeTextPlain,
	}, s.mcpCitation)
}

// AddTextResource registers an additional static text resource on the
// underlying server, using the same machinery as the attribution resources.
// An empty mimeType defaults to text/plain; a malformed one is rejected
// before the server is touched. Duplicate URIs follow the underlying
// server's own registration semantics.
func (s *Server) AddTextResource(uri, name, description, mimeType, text string) error {
	if mimeType == "" {
		mimeType = mimeTextPlain
	}
	mt, err := contenttype.ParseMediaType(mimeType)
	if err != nil {
		return fmt.Errorf("parse media type %q: %w", mimeType, err)
	}
	s.addStatic(&mcp.Resource{
		URI:         uri,
		Name:        name,
		Description: description,
		MIMEType:    mt.String(),
	}, text)
	return nil
}

func (s *Server) addStatic(res *mcp.Resource, text string) {
	s.mcp.AddResource(res, staticTextHandler(res.URI, res.MIMEType, text))
	s.log.Debug("resource.register", slog.String("uri", res.URI))
}

// staticTextHandler serves a fixed string. The value is captured at
// registration and every read returns it verbatim.
func staticTextHandler(uri, mimeType, text string) mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: mimeType,
					Text:     text,
				},
			},
		}, nil
	}
}
