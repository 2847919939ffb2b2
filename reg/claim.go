package reg

import (
	"errors"
	"reflect"
	"sync"
)

var ErrClaimed = errors.New("register already claimed")

var claims struct {
	sync.Mutex
	taken map[reflect.Type]bool
}

func claim(t reflect.Type) error {
	claims.Lock()
	defer claims.Unlock()
	if claims.taken[t] {
		return ErrClaimed
	}
	if claims.taken == nil {
		claims.taken = make(map[reflect.Type]bool)
	}
	claims.taken[t] = true
	return nil
}

// Claim returns a proxy for the register described by R, or ErrClaimed if
// the register is already claimed. Proxies created with [New] are not
// tracked, only other calls to Claim are.
func Claim[R Reg[T], T any]() (Proxy[R, T], error) {
	return Proxy[R, T]{}, claim(reflect.TypeFor[R]())
}

// ClaimCluster is like [Claim] for register clusters.
func ClaimCluster[R Cluster[T], T any]() (ClusterProxy[R, T], error) {
	return ClusterProxy[R, T]{}, claim(reflect.TypeFor[R]())
}

// Unclaim releases the claim on the register or cluster described by R. The
// proxy returned by the claim must not be used afterwards.
func Unclaim[R any]() {
	claims.Lock()
	delete(claims.taken, reflect.TypeFor[R]())
	claims.Unlock()
}
