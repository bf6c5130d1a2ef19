package ports

// PeerResolver locates an installed package's own manifest through the
// consumer project's module resolution. Implementations are injected so the
// audit logic can be tested against a fake resolver.
//
//go:generate mockgen -source=peer_resolver.go -destination=mocks/mock_peer_resolver.go -package=mocks
type PeerResolver interface {
	// Resolve returns the path to name's installed package manifest,
	// searching node_modules directories from root upward.
	Resolve(root, name string) (string, error)
}
