// Package config provides configuration loading, merging, and validation
// facilities for the SAR-Drone client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which reduces the merged
// [StructuredConfig] to the settings the client runtime actually needs.
package config
