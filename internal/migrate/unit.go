package migrate

import "fmt"

// Kind classifies a discovered unit in a legacy datapack tree.
type Kind int

const (
	// KindFunction is a raw .mcfunction command file.
	KindFunction Kind = iota
	// KindTag is a function tag file under tags/functions.
	KindTag
	// KindManifest is the top-level pack.mcmeta file.
	KindManifest
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindTag:
		return "tag"
	case KindManifest:
		return "manifest"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SourceUnit is one discovered item in the legacy tree.
type SourceUnit struct {
	// Namespace is the first path segment under the data root.
	// Empty for the manifest unit.
	Namespace string
	Kind      Kind
	// RelativePath is the slash-separated path of the file below its
	// kind directory (e.g. "sub/greet.mcfunction").
	RelativePath string
	RawContent   []byte
}

// ID returns the identity of the unit, unique within a scan.
func (u SourceUnit) ID() string {
	return fmt.Sprintf("%s:%s/%s", u.Namespace, u.Kind, u.RelativePath)
}
