package atlasmap

import (
	"os"
	"strings"
)

// DeriveSiblingPath replaces the extension of the last element of base with
// ext. If base has no extension, ext is appended. ext may be given with or
// without its leading dot; an empty ext strips the extension. A leading dot
// in a file name (".tiles") does not start an extension.
//
// A base with no file name (empty, or ending in a separator) is returned
// unchanged.
//
//	DeriveSiblingPath("maps/level1", ".png")      == "maps/level1.png"
//	DeriveSiblingPath("maps/level1.json", "png")  == "maps/level1.png"
//	DeriveSiblingPath("maps/v1.2/level", ".json") == "maps/v1.2/level.json"
func DeriveSiblingPath(base, ext string) string {
	nameStart := strings.LastIndexFunc(base, isPathSeparator) + 1
	name := base[nameStart:]
	if name == "" || name == "." || name == ".." {
		return base
	}

	stem := base
	if dot := strings.LastIndexByte(name, '.'); dot > 0 {
		stem = base[:nameStart+dot]
	}

	if ext == "" {
		return stem
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return stem + ext
}

func isPathSeparator(r rune) bool {
	return r == '/' || (r < 0x80 && os.IsPathSeparator(uint8(r)))
}
