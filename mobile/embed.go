//go:build mobile

// embed.go - mobile asset embedding.
//
// Only compiles with -tags mobile. The build step copies assets/ into
// this directory before binding, since //go:embed cannot reach outside
// the package directory.
package mobile

import "embed"

//go:embed assets/config
var configFS embed.FS
