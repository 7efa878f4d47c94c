// Package config provides configuration loading, merging, and validation
// facilities for the neuprint CLI and the sandbox server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (NEUPRINT_ prefix)
//  3. JSON config file
//  4. Command-line flags
//
// The main entry points are [GetCLIConfig] and [GetSandboxConfig]; both take
// the [Flags] bound to the command's pflag.FlagSet.
package config
