// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the portal command-line client.
package config
