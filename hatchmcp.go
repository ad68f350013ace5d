package hatchmcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Sentinel citation values used when the corresponding option is omitted.
// Consumers may compare resource contents against these to detect servers
// that never declared attribution.
const (
	DefaultOriginCitation = "No origin citation provided."
	DefaultMCPCitation    = "No MCP citation provided."
)

const defaultVersion = "0.0.0"

// Server wraps an MCP server and publishes attribution resources against it.
// All fields are fixed at construction; there is no update API. The zero
// value is not usable; construct with New.
type Server struct {
	name           string
	version        string
	originCitation string
	mcpCitation    string
	moduleIdentity string

	// owned reports whether the wrapper created the underlying server itself.
	// Adopted servers keep their caller-managed lifecycle.
	owned bool

	mcp *mcp.Server
	log *slog.Logger
}

// New constructs a wrapper named name, resolves the calling module's
// identity, and registers the three attribution resources before returning.
//
// Unless WithServer is supplied, a new underlying server is created with name
// as its implementation name. Unless WithModuleIdentity is supplied, the
// identity is resolved from the source file of the caller; construction fails
// with a *ConfigurationError when that file cannot be determined. On failure
// no server is returned and no resources are registered.
func New(name string, opts ...Option) (*Server, error) {
	s := &Server{
		name:           name,
		version:        defaultVersion,
		originCitation: DefaultOriginCitation,
		mcpCitation:    DefaultMCPCitation,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default().With(slog.String("component", "hatchmcp"))
	}

	if s.moduleIdentity == "" {
		identity, err := callerModule(2)
		if err != nil {
			return nil, err
		}
		s.moduleIdentity = identity
	}
	s.log.Info("identity.resolve",
		slog.String("name", s.name),
		slog.String("module", s.moduleIdentity))

	if s.mcp == nil {
		s.mcp = mcp.NewServer(&mcp.Implementation{Name: s.name, Version: s.version}, nil)
		s.owned = true
	}

	s.registerAttributionResources()
	return s, nil
}

// MCP returns the underlying server handle. Callers register tools, prompts,
// and further resources against it exactly as they would without the wrapper.
func (s *Server) MCP() *mcp.Server { return s.mcp }

// Name returns the display name supplied at construction.
func (s *Server) Name() string { return s.name }

// ModuleIdentity returns the resolved identity of the constructing module.
func (s *Server) ModuleIdentity() string { return s.moduleIdentity }

// Version returns the implementation version an owned-mode server reports.
func (s *Server) Version() string { return s.version }

// Logger returns the wrapper's logger.
func (s *Server) Logger() *slog.Logger { return s.log }

// Owned reports whether the wrapper created the underlying server itself.
func (s *Server) Owned() bool { return s.owned }

// Run serves the underlying server over t until the client disconnects or the
// context is canceled. A nil transport defaults to stdio. Run is a
// pass-through; servers adopted via WithServer may equally be run by their
// original owner.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	if t == nil {
		t = &mcp.StdioTransport{}
	}
	return s.mcp.Run(ctx, t)
}
