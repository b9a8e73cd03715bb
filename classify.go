package main

import "io/fs"

// Classify determines the kind of an entry from its lstat metadata.
//
// Symlinks win over everything else, so a link to a directory is reported as
// a symlink. Special subtypes are only distinguished when the platform
// supports them; anything that is neither a regular file nor a directory
// falls through to KindSpecial with SpecialNA.
func Classify(info fs.FileInfo, caps Capabilities) (Kind, SpecialKind) {
	mode := info.Mode()

	if mode&fs.ModeSymlink != 0 {
		return KindSymlink, SpecialNA
	}

	if caps.SpecialKinds {
		switch {
		case mode&fs.ModeSocket != 0:
			return KindSpecial, SpecialSocket
		case mode&fs.ModeCharDevice != 0:
			return KindSpecial, SpecialCharDevice
		case mode&fs.ModeDevice != 0:
			return KindSpecial, SpecialBlockDevice
		case mode&fs.ModeNamedPipe != 0:
			return KindSpecial, SpecialFifo
		}
	}

	if mode.IsRegular() {
		return KindFile, SpecialNA
	}
	if mode.IsDir() {
		return KindDir, SpecialNA
	}
	return KindSpecial, SpecialNA
}
