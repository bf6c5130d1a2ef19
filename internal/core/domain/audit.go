package domain

// MissingPeer is a peer that could not be resolved in the consumer project.
type MissingPeer struct {
	Name   string
	Want   string
	Reason string
}

// MismatchedPeer is a peer whose installed version differs from the pin.
// Got is "unknown" when the installed manifest resolved but could not be
// parsed; Reason then carries the parse error.
type MismatchedPeer struct {
	Name   string
	Want   string
	Got    string
	Reason string
}

// AuditResult is the outcome of comparing installed peers against the pins.
// All slices follow manifest order.
type AuditResult struct {
	Peers      []Peer
	Missing    []MissingPeer
	Mismatched []MismatchedPeer
}

// Clean reports whether every peer resolved with the pinned version.
func (r *AuditResult) Clean() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}
