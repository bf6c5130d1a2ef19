package domain

// Workspace describes a pnpm workspace manifest.
type Workspace struct {
	// Root is the directory containing the workspace manifest.
	Root string
	// Packages holds the package globs declared in the manifest, if any.
	Packages []string
}
