// Package hatchmcp decorates an MCP server with machine-readable attribution
// resources. Wrapping a server publishes three read-only text resources that
// identify the server and credit both the wrapped work and its MCP
// implementation:
//
//   - name://{moduleIdentity} — the server's declared name
//   - citation://origin/{name} — citation for the original algorithm or research
//   - citation://mcp/{name} — citation for the MCP server implementation
//
// The module identity is resolved from the source file that constructs the
// wrapper, so two servers built from different modules always publish distinct
// name:// URIs without any per-deployment configuration.
//
// Quick start:
//
//	srv, err := hatchmcp.New("Alpha",
//	    hatchmcp.WithOriginCitation("Doe et al. (2020). Alpha: a reference algorithm."),
//	    hatchmcp.WithMCPCitation("Smith (2024). Alpha MCP server."),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Register tools against srv.MCP() as usual, then serve.
//	if err := srv.Run(ctx, nil); err != nil {
//	    log.Fatal(err)
//	}
//
// An existing *mcp.Server can be adopted instead of creating a new one:
//
//	srv, err := hatchmcp.New("Beta", hatchmcp.WithServer(existing))
//
// In adopt mode the wrapper registers its resources against the supplied
// handle and does not take over its lifecycle.
package hatchmcp
