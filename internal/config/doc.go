// Package config provides configuration loading, merging, and validation
// facilities for the upload server.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables, with a local .env file filling unset ones
//  3. JSON config file
//  4. Package defaults
//
// The main entry point is [GetStructuredConfig].
package config
