package pbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedIDs_KnownAnswers(t *testing.T) {
	// Truncated uppercase MD5 of the namespaced seed strings. Pinned so a
	// refactor cannot silently change ids for already-patched projects.
	assert.Equal(t, "ABE3391FF5B10A93D14292CC", RefID("Pkg/Local/Foo.swift"))
	assert.Equal(t, "706912A1E499DF2EB91568B4", BuildID("Pkg/Local/Foo.swift"))
	assert.Equal(t, "0AFC3A18523613CEB6F1EEC4", RefID("ThinkFast/Presentation/Auth/SignInView.swift"))
}

func TestDerivedIDs_Deterministic(t *testing.T) {
	paths := []string{
		"A.swift",
		"Deep/Nested/Path/B.swift",
		"Path With Spaces/C.swift",
	}
	for _, p := range paths {
		assert.Equal(t, RefID(p), RefID(p))
		assert.Equal(t, BuildID(p), BuildID(p))
	}
}

func TestDerivedIDs_Shape(t *testing.T) {
	id := RefID("Some/File.swift")
	assert.Len(t, id, 24)
	for _, c := range id {
		assert.Contains(t, "0123456789ABCDEF", string(c))
	}
}

func TestDerivedIDs_NamespacesDiffer(t *testing.T) {
	// The fileref and buildfile namespaces must never collide for the
	// same path; the build record references the reference record.
	assert.NotEqual(t, RefID("X.swift"), BuildID("X.swift"))
}

func TestDerivedIDs_PathSensitive(t *testing.T) {
	// Same file name in different directories gets different ids.
	assert.NotEqual(t, RefID("A/View.swift"), RefID("B/View.swift"))
}
