package domain

// Peer is one pinned peer dependency entry from the package manifest.
type Peer struct {
	Name    string
	Version string
}

// Specifier is a package install target in "name@version" form.
type Specifier string

// Specifier formats the peer as an install target.
func (p Peer) Specifier() Specifier {
	return Specifier(p.Name + "@" + p.Version)
}

// Manifest is a parsed package manifest.
// Peers preserves the document order of the peerDependencies object.
type Manifest struct {
	Name    string
	Version string
	Peers   []Peer
}

// Specifiers returns the install targets for all peers, in manifest order.
func (m *Manifest) Specifiers() []Specifier {
	if len(m.Peers) == 0 {
		return nil
	}
	specs := make([]Specifier, 0, len(m.Peers))
	for _, p := range m.Peers {
		specs = append(specs, p.Specifier())
	}
	return specs
}
