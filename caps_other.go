//go:build !unix

package main

// Capabilities lists the optional metadata this platform can report.
type Capabilities struct {
	Permissions  bool
	ModTime      bool
	SpecialKinds bool
}

// Permission bits and special-file subtypes are not meaningful here.
func hostCapabilities() Capabilities {
	return Capabilities{}
}
