package pbx

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// idLen is the number of hex characters kept from the hash. 24 characters
// (96 bits) matches the width of Xcode's own object identifiers and keeps
// accidental collision negligible at the entry counts this tool sees.
const idLen = 24

// RefID derives the PBXFileReference identifier for a project-relative path.
// The same path always yields the same id, so repeated runs recognize an
// entry they inserted earlier without tracking any state.
func RefID(relativePath string) string {
	return deriveID("fileref_" + relativePath)
}

// BuildID derives the PBXBuildFile identifier for a project-relative path.
func BuildID(relativePath string) string {
	return deriveID("buildfile_" + relativePath)
}

func deriveID(seed string) string {
	sum := md5.Sum([]byte(seed))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:idLen]
}
