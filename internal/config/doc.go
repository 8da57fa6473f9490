// Package config provides configuration loading, merging, and validation
// facilities for the shopman client and server.
//
// Configuration is assembled from multiple sources in the following priority
// order (a non-zero field of an earlier source is kept; later sources only
// fill zero fields):
//  1. Environment variables, seeded from an optional .env file
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] for the reference backend and
// [GetClientConfig] for the terminal client.
package config
