package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPackages is returned when an install command is built with no packages.
	ErrNoPackages = zerr.New("no packages to install")

	// ErrUnsupportedManager is returned when a manager name is outside the supported set.
	ErrUnsupportedManager = zerr.New("unsupported package manager, expected 'npm', 'pnpm' or 'bun'")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrConfigReadFailed is returned when the peerpin config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read peerpin config")

	// ErrConfigParseFailed is returned when the peerpin config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse peerpin config")

	// ErrWorkspaceParseFailed is returned when a workspace manifest cannot be parsed.
	ErrWorkspaceParseFailed = zerr.New("failed to parse workspace manifest")

	// ErrSpawnFailed is returned when the install command cannot be started.
	ErrSpawnFailed = zerr.New("failed to start install command")

	// ErrInstallFailed is returned when the install command exits non-zero.
	ErrInstallFailed = zerr.New("install command failed")

	// ErrAuditFailed is returned when the audit cannot read its inputs at all.
	ErrAuditFailed = zerr.New("peer audit could not be completed")

	// ErrPeersOutdated is returned by strict audits when peers are missing or mismatched.
	ErrPeersOutdated = zerr.New("peer tools are missing or out of date")
)
