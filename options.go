package hatchmcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option customizes a Server during construction.
type Option func(*Server)

// WithServer adopts an existing MCP server instead of creating one. The
// wrapper registers its attribution resources against the supplied handle but
// does not own its lifecycle; the caller remains responsible for running and
// stopping it.
func WithServer(m *mcp.Server) Option {
	return func(s *Server) {
		if m != nil {
			s.mcp = m
		}
	}
}

// WithOriginCitation sets the citation for the original algorithm or research
// the server exposes. The string is stored verbatim; when the option is not
// supplied the resource returns DefaultOriginCitation.
func WithOriginCitation(citation string) Option {
	return func(s *Server) { s.originCitation = citation }
}

// WithMCPCitation sets the citation for the MCP server implementation itself.
// The string is stored verbatim; when the option is not supplied the resource
// returns DefaultMCPCitation.
func WithMCPCitation(citation string) Option {
	return func(s *Server) { s.mcpCitation = citation }
}

// WithModuleIdentity sets the module identity explicitly, bypassing call-stack
// resolution. Useful when the true call site is a bootstrap shim rather than
// the module being attributed.
func WithModuleIdentity(identity string) Option {
	return func(s *Server) {
		if identity != "" {
			s.moduleIdentity = identity
		}
	}
}

// WithVersion sets the implementation version reported by a server created in
// owned mode. Ignored when an existing server is adopted via WithServer.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}
