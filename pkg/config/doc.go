// Package config loads ddbg's settings. Values are layered, each source
// overriding the previous one: the embedded defaults, the user's config
// file, DDBG_ environment variables and finally command-line flags.
package config
