package constants

import (
	"crypto/tls"
	"time"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultConnectTimeout is used by the CLI when no connect timeout is configured.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout is used by the CLI when no read timeout is configured.
	DefaultReadTimeout = 30 * time.Second

	// KeepAliveInterval is the TCP keep-alive period of pooled connections.
	KeepAliveInterval = 30 * time.Second
)

// MinTLSVersion is the lowest protocol version the transport negotiates.
// TLS 1.0 is rejected.
const MinTLSVersion = tls.VersionTLS11

// HTTP status boundaries used by the response classifier.
const (
	// StatusSuccessMin is the lowest status decoded as a success.
	StatusSuccessMin = 200

	// StatusSuccessLimit is the exclusive upper bound of the success range.
	StatusSuccessLimit = 299

	// StatusClientErrorMin is the lowest status classified as a validation failure.
	StatusClientErrorMin = 400

	// StatusClientErrorLimit is the exclusive upper bound of the validation range.
	StatusClientErrorLimit = 499
)

// Content types.
const (
	// ContentTypeJSON is the MIME type of JSON bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the MIME type of URL-encoded form bodies.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Display.
const (
	// MaskedSecret replaces credentials in logs and CLI output.
	MaskedSecret = "***"

	// DisplayTimeLayout is used by the CLI to render timestamps.
	DisplayTimeLayout = "2006-01-02 15:04:05"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// CLI helpers.
const (
	// MinimumArgumentCount is used by commands taking KEY VALUE pairs.
	MinimumArgumentCount = 2

	// NotAvailable is rendered for empty table cells.
	NotAvailable = "N/A"

	// JSONIndent is the indentation used for pretty JSON output.
	JSONIndent = "  "
)
