package cache

// Keyer derives cache keys for each artifact kind.
type Keyer interface {
	// ReportKey returns the key of the report produced by a simulation
	// config. configData is the config's canonical encoding.
	ReportKey(configData []byte) string

	// RenderKey returns the key of a rendered board tree.
	RenderKey(pattern string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the render settings that change the output.
type RenderKeyOpts struct {
	Size     int    `json:"size"`
	MaxDepth int    `json:"max_depth"`
	Format   string `json:"format"`
}

// DefaultKeyer hashes its inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) ReportKey(configData []byte) string {
	return "report:" + Hash(configData)
}

func (DefaultKeyer) RenderKey(pattern string, opts RenderKeyOpts) string {
	return hashKey("render", pattern, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
