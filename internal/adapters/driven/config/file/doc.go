// Package file loads the server configuration from a TOML file.
// Every field has a default, so the server runs with no config file at all.
package file
