// Package config loads runtime configuration for the bank client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-a string   base URL of the bank API
//	-t int      per-request timeout (seconds)
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	BANK_SERVER_URL, BANK_REQUEST_TIMEOUT ("5s"), BANK_SESSION_DB, BANK_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "5s",
//	  "session_db_path": "session.db",
//	  "log_level": "info"
//	}
package config
