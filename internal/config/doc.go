// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, optionally seeded from a .env file
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetStructuredConfig] for the server,
// [GetAdminConfig] for the admin tool and [GetClientConfig] for the
// API client.
package config
