package pactcore

import "fmt"

// Path is a concrete location inside a Value tree, rendered in bracket
// notation: ['$'] is the root, ['key'] appends a child, [i] appends an
// array index. This is the sole substrate jsonpath.PathMatcher matches
// against.
type Path string

// RootPath returns the ['$'] sentinel, the implicit prefix of every
// concrete path the differ emits.
func RootPath() Path { return Path("['$']") }

// Child appends an object-key segment.
func (p Path) Child(key string) Path {
	return Path(string(p) + "['" + key + "']")
}

// Index appends an array-index segment.
func (p Path) Index(i int) Path {
	return Path(fmt.Sprintf("%s[%d]", p, i))
}

func (p Path) String() string { return string(p) }
