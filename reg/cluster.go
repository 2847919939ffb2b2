package reg

// Cluster is implemented by descriptors of a contiguous run of identical
// registers, e.g. one register per GPIO port.
//
// The contract is the same as for [Reg]: the returned slice must alias the
// registers and stay valid for the whole run of the program.
type Cluster[T any] interface {
	Slice() []T
}

// ClusterProxy provides access to the registers described by R. Like [Proxy]
// it holds no data.
type ClusterProxy[R Cluster[T], T any] struct {
	_ [0]R
}

// NewCluster returns a proxy for the registers described by R.
func NewCluster[R Cluster[T], T any]() ClusterProxy[R, T] {
	return ClusterProxy[R, T]{}
}

// Get returns the registers.
func (p ClusterProxy[R, T]) Get() []T {
	var r R
	return r.Slice()
}

// Index returns a pointer to the i-th register. It panics if i is out of
// range.
func (p ClusterProxy[R, T]) Index(i int) *T {
	return &p.Get()[i]
}

// Len returns the number of registers in the cluster.
func (p ClusterProxy[R, T]) Len() int {
	return len(p.Get())
}
