package templates

import "embed"

// Sources use logical names; embed skips files starting with "." or "_".
//
//go:embed files/*.tmpl
var sourceFS embed.FS

const sourceDir = "files"
