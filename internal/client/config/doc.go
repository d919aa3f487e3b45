// Package config loads runtime configuration for the notes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config; JSON, or YAML when the
//     file ends in .yaml / .yml.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the note server
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds, 0 = none)
//	-l string   log level
//
// # File schema
//
// Durations accept Go duration strings or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
