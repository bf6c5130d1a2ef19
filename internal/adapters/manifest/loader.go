// Package manifest reads package.json files.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/peerpin/peerpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.ManifestLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the manifest at path.
// peerDependencies entries keep their document order, which encoding/json
// maps would lose, so that object is decoded token by token.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var doc struct {
		Name             string          `json:"name"`
		Version          string          `json:"version"`
		PeerDependencies json.RawMessage `json:"peerDependencies"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	peers, err := decodePeers(doc.PeerDependencies)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	return &domain.Manifest{
		Name:    doc.Name,
		Version: doc.Version,
		Peers:   peers,
	}, nil
}

// Version reads only the version field of the manifest at path.
func (l *Loader) Version(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var doc struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if doc.Version == "" {
		return "", zerr.With(domain.ErrManifestParseFailed, "path", path)
	}
	return doc.Version, nil
}

// decodePeers walks the peerDependencies object with a json.Decoder so the
// resulting slice follows insertion order.
func decodePeers(raw json.RawMessage) ([]domain.Peer, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.New("peerDependencies must be an object")
	}

	var peers []domain.Peer
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, zerr.New("peerDependencies key is not a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		version, ok := valTok.(string)
		if !ok {
			return nil, zerr.With(zerr.New("peerDependencies version is not a string"), "name", name)
		}

		peers = append(peers, domain.Peer{Name: name, Version: version})
	}

	return peers, nil
}
