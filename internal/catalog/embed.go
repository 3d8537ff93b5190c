// Package catalog provides embedded furniture preset data and utilities for
// loading it.
package catalog

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
