// Package config loads, merges and validates the configuration of the
// BeerBattle client and document store server.
//
// Sources are merged field by field and the first source that sets a field
// wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first and never overrides real variables)
//  2. Command-line flags (server only) or explicit client overrides
//  3. JSON config file named by CONFIG, -c/-config or the client override
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig].
package config
