package manifest

// Manifest is one declarative theme.
type Manifest struct {
	ID       string
	Name     string
	Version  string
	Source   string
	Styles   string
	Scripts  string
	Tokens   map[string]string
	Assets   Assets
	Variants map[string]Variant
	Slots    map[string]Template
	Blocks   map[string]Template
}

// Assets maps asset keys to files served under Prefix.
type Assets struct {
	Prefix string            `json:"prefix" yaml:"prefix"`
	Files  map[string]string `json:"files" yaml:"files"`
}

// Variant overrides tokens and assets for a named flavour of the theme.
type Variant struct {
	Tokens map[string]string `json:"tokens" yaml:"tokens"`
	Assets Assets            `json:"assets" yaml:"assets"`
}

// Template is a slot or block renderer: a pongo2 template plus the bundle it
// contributes to the page.
type Template struct {
	Template string `json:"template" yaml:"template"`
	Styles   string `json:"styles" yaml:"styles"`
	Scripts  string `json:"scripts" yaml:"scripts"`
}

type manifestFile struct {
	ID       string              `json:"id" yaml:"id"`
	Name     string              `json:"name" yaml:"name"`
	Version  string              `json:"version" yaml:"version"`
	Styles   string              `json:"styles" yaml:"styles"`
	Scripts  string              `json:"scripts" yaml:"scripts"`
	Tokens   map[string]string   `json:"tokens" yaml:"tokens"`
	Assets   Assets              `json:"assets" yaml:"assets"`
	Variants map[string]Variant  `json:"variants" yaml:"variants"`
	Slots    map[string]Template `json:"slots" yaml:"slots"`
	Blocks   map[string]Template `json:"blocks" yaml:"blocks"`
}
