package cache

// Keyer derives cache keys. Every key starts with a short kind prefix so
// entries of different kinds never collide.
type Keyer interface {
	// SolveKey identifies a cover search over the graph with the given hash.
	SolveKey(graphHash string, opts SolveKeyOpts) string

	// KernelKey identifies a kernelization of the graph at threshold k.
	KernelKey(graphHash string, k int) string

	// ArtifactKey identifies a rendered picture of the graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// SolveKeyOpts lists everything that changes a solver's answer.
type SolveKeyOpts struct {
	Method   string `json:"method"`
	K        int    `json:"k"`
	Depth    int    `json:"depth"`
	Seed     uint64 `json:"seed"`
	MaxNodes int    `json:"max_nodes"`
	Restarts int    `json:"restarts"`
}

// ArtifactKeyOpts lists everything that changes a rendering.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Layout  string `json:"layout"`
	Cover   []int  `json:"cover,omitempty"`
	K       int    `json:"k"`
	Classes bool   `json:"classes"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SolveKey implements [Keyer].
func (DefaultKeyer) SolveKey(graphHash string, opts SolveKeyOpts) string {
	return hashKey("solve", graphHash, opts)
}

// KernelKey implements [Keyer].
func (DefaultKeyer) KernelKey(graphHash string, k int) string {
	return hashKey("kernel", graphHash, k)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
