//go:build unix

package main

// Capabilities lists the optional metadata this platform can report.
// It is resolved once at startup; flags whose capability is missing are
// accepted but have no effect.
type Capabilities struct {
	Permissions  bool
	ModTime      bool
	SpecialKinds bool
}

func hostCapabilities() Capabilities {
	return Capabilities{
		Permissions:  true,
		ModTime:      true,
		SpecialKinds: true,
	}
}
