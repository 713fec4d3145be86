// Package config provides configuration loading, merging, and validation
// facilities for the rhsm-sync binaries.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every non-zero field:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or YAML config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the merged tree. [GetClientConfig],
// [GetServerConfig] and [GetCtlConfig] project it into the views used by
// cmd/client, cmd/server and cmd/subctl and validate them.
package config
