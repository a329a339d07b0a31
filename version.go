package dectab

import _ "embed"

// Version is the release of the dectab module, read from the VERSION file.
//
//go:embed VERSION
var Version string
