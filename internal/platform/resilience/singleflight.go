package resilience

import "golang.org/x/sync/singleflight"

// SingleFlight is a typed view over singleflight.Group. Concurrent callers
// of Do with the same key share the leader's result; shared reports whether
// the value came from another caller's run.
type SingleFlight[V any] struct {
	group singleflight.Group
}

func (g *SingleFlight[V]) Do(key string, fn func() (V, error)) (V, error, bool) {
	v, err, shared := g.group.Do(key, func() (any, error) {
		return fn()
	})
	out, _ := v.(V)
	return out, err, shared
}

// Forget drops key so the next Do starts a fresh call.
func (g *SingleFlight[V]) Forget(key string) {
	g.group.Forget(key)
}
