// Package config provides configuration loading, merging, and validation
// facilities for the poster server and the sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the server runtime and
// [GetClientConfig] for the client. Both accept the raw command-line
// arguments so positional client commands survive flag parsing.
package config
