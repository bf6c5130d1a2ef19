package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// InstallCommand is a fully resolved install invocation.
type InstallCommand struct {
	Command string
	Args    []string
	Dir     string
}

// String renders the command line as it would be typed in a shell.
func (c InstallCommand) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

// BuildOptions configures BuildInstallCommand.
// WorkspaceRoot is only consulted for managers that support redirecting the
// install into a workspace root (currently pnpm).
type BuildOptions struct {
	Cwd           string
	WorkspaceRoot string
}

// BuildInstallCommand constructs the install invocation for the given manager.
// All managers pin exact versions; semver ranges would defeat the point of
// distributing pinned tool versions.
func BuildInstallCommand(m Manager, pkgs []Specifier, opts BuildOptions) (InstallCommand, error) {
	if len(pkgs) == 0 {
		return InstallCommand{}, ErrNoPackages
	}

	switch m {
	case ManagerNpm:
		// npm installs in place even inside a workspace. Observed behavior,
		// kept as is.
		args := append([]string{"install", "--save-dev", "--save-exact"}, asStrings(pkgs)...)
		return InstallCommand{Command: "npm", Args: args, Dir: opts.Cwd}, nil

	case ManagerPnpm:
		args := []string{"add", "-D"}
		dir := opts.Cwd
		if opts.WorkspaceRoot != "" {
			args = append(args, "-w")
			dir = opts.WorkspaceRoot
		}
		args = append(args, "--save-exact")
		args = append(args, asStrings(pkgs)...)
		return InstallCommand{Command: "pnpm", Args: args, Dir: dir}, nil

	case ManagerBun:
		args := append([]string{"add", "--dev", "--exact"}, asStrings(pkgs)...)
		return InstallCommand{Command: "bun", Args: args, Dir: opts.Cwd}, nil

	default:
		return InstallCommand{}, zerr.With(ErrUnsupportedManager, "manager", string(m))
	}
}

func asStrings(pkgs []Specifier) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = string(p)
	}
	return out
}

// InstallPlan is the result of preparing an install run.
type InstallPlan struct {
	Manager  Manager
	Packages []Specifier
	Command  InstallCommand
}

// Empty reports whether the manifest declared no peers, in which case the
// install is a no-op rather than an error.
func (p *InstallPlan) Empty() bool {
	return len(p.Packages) == 0
}
