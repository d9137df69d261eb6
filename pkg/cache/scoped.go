package cache

// ScopedKeyer wraps a Keyer with a prefix, so entries written by one build
// of the program are invisible to another.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.CacheScope())
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(configData []byte) string {
	return k.prefix + k.inner.ReportKey(configData)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(pattern string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(pattern, opts)
}
