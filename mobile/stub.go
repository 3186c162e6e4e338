//go:build !mobile

// stub.go - placeholder for non-mobile builds.
//
// The real mobile code in mobile.go and embed.go only compiles with
// -tags mobile.
package mobile

// Dummy is an empty exported function so the package is importable in
// non-mobile builds too.
func Dummy() {}
