// embed.go - embedded asset declarations.
// Must live in the project root because //go:embed can only embed files
// from the declaring package's directory tree.
package main

import "embed"

//go:embed assets/config
var configFS embed.FS
