// Package hatchmcptest provides test helpers for asserting on a wrapped
// server's attribution resources. It connects an MCP client to the server
// over in-memory transports so tests exercise the real read path rather than
// poking at internals.
package hatchmcptest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	hatchmcp "github.com/crackingshells/hatch-mcp-server-go"
)

// Connect wires srv to a fresh MCP client session over in-memory transports.
// Each call uses a unique client identity so concurrent tests never share a
// session. Both ends are torn down via t.Cleanup.
func Connect(t *testing.T, srv *hatchmcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := srv.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server transport: %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "hatchmcptest-" + uuid.NewString(),
		Version: "0.0.0",
	}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client transport: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

// ReadText fetches uri through the client session and returns its text
// content. The test fails on transport errors or non-text payloads.
func ReadText(t *testing.T, cs *mcp.ClientSession, uri string) string {
	t.Helper()

	res, err := cs.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		t.Fatalf("read %s: %v", uri, err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("read %s: expected 1 content item, got %d", uri, len(res.Contents))
	}
	c := res.Contents[0]
	if c.Blob != nil {
		t.Fatalf("read %s: expected text content, got blob", uri)
	}
	return c.Text
}
