package domain

// Config holds optional per-project overrides from peerpin.yaml.
// The zero value means "no overrides".
type Config struct {
	// Manager overrides manager detection unless a flag is passed.
	Manager string
	// Manifest points at the package manifest, relative to the project root.
	Manifest string
}
