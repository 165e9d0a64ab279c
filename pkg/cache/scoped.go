package cache

// ScopedKeyer prefixes every key of an inner [Keyer], giving separate
// namespaces to servers that share a Redis or Mongo backend:
//
//	keyer := cache.NewScopedKeyer(nil, "vertexcover:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SolveKey implements [Keyer].
func (k *ScopedKeyer) SolveKey(graphHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(graphHash, opts)
}

// KernelKey implements [Keyer].
func (k *ScopedKeyer) KernelKey(graphHash string, threshold int) string {
	return k.prefix + k.inner.KernelKey(graphHash, threshold)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
