package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no API endpoint configured, use --endpoint or --env")
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
	ErrNotAuthenticated     = errors.New("not authenticated, run 'moip login' first")
	ErrEndpointMismatch     = errors.New("token belongs to a different endpoint than the configured one")
)

// Input errors.
var (
	ErrFromFileRequired    = errors.New("a request body is required, use --from-file")
	ErrUnsupportedFileType = errors.New("unsupported request file type, expected .json, .yaml or .yml")
	ErrDirectoryTraversal  = errors.New("path contains directory traversal sequences")
	ErrInvalidFilter       = errors.New("invalid filter, expected FIELD=EXPRESSION")
	ErrCredentialsRequired = errors.New("both token and key are required")
)
