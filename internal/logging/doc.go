// Package logging provides a simple leveled logging interface for the
// filmstrip service and its command line tools.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable
// (DEBUG=1 forces debug) and may be overridden at runtime with SetLevel.
package logging
