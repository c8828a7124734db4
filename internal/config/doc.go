// Package config provides configuration loading, merging, and validation
// for the PressPay server.
//
// Configuration is assembled from several sources, highest priority first:
//  1. Environment variables (a local .env file is loaded into the
//     environment beforehand when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
