package templates

import "embed"

//go:embed configs
var Configs embed.FS
