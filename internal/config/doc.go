// Package config provides configuration loading, merging, and validation
// facilities for the items client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. JSON config file (path from the CONFIG variable)
//
// The main entry points are [GetStructuredConfig] for the raw merged view
// and [GetClientConfig] for the runtime configuration consumed by the
// client. The request timeout is a constant and cannot be configured.
package config
