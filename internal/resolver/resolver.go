// Package resolver turns module-import specifiers into validated absolute
// file paths. It discovers path aliases from tsconfig/jsconfig files, Vite
// configs and webpack configs (nearest config wins, bounded by the workspace
// root), probes a fixed extension and index-file order, and enforces a
// security policy on every returned path. Config values are extracted by
// pattern matching over the config text; no configuration code is ever
// evaluated.
//
// Resolution is stateless: every call is a pure function of its inputs and
// the current filesystem contents, so concurrent calls need no locking.
package resolver

import (
	"context"
	"path/filepath"
	"strings"
)

// DefaultDependencyDir is the conventional third-party install directory
// that is exempt from the workspace containment rule.
const DefaultDependencyDir = "node_modules"

// Resolver resolves import specifiers for one workspace convention. The
// zero value is not usable; construct with New.
type Resolver struct {
	depMarker string
}

// Options tune resolution behavior.
type Options struct {
	// DependencyDir is the directory segment exempt from the workspace
	// boundary. Defaults to DefaultDependencyDir.
	DependencyDir string
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	if opts.DependencyDir == "" {
		opts.DependencyDir = DefaultDependencyDir
	}
	return &Resolver{depMarker: opts.DependencyDir}
}

// Resolve is the public entry point. It validates the specifier, classifies
// it, discovers aliases when needed and finalizes the candidate path. It is
// a total function: every outcome, including security violations and parse
// failures in config files, is expressed in the Result.
func (r *Resolver) Resolve(ctx context.Context, req Request) Result {
	if reason, ok := Validate(req.Specifier, r.depMarker); !ok {
		return rejected(reason)
	}
	if err := ctx.Err(); err != nil {
		return rejected("canceled")
	}

	spec := req.Specifier
	currentDir := filepath.Dir(req.FromFile)
	cache := newConfigCache()

	switch {
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../"):
		return finalize(filepath.Join(currentDir, spec), req.Root, r.depMarker)

	case strings.HasPrefix(spec, "/"):
		if hasSegment(spec, r.depMarker) {
			return finalize(spec, req.Root, r.depMarker)
		}
		// A bare leading "/" is workspace-root-relative, not
		// filesystem-root.
		return finalize(filepath.Join(req.Root, spec), req.Root, r.depMarker)

	case aliasLike(spec):
		if candidate, ok := resolveAlias(spec, currentDir, req.Root, cache); ok {
			return finalize(candidate, req.Root, r.depMarker)
		}
		return r.resolveBare(spec, currentDir, req.Root)

	default:
		return r.resolveBare(spec, currentDir, req.Root)
	}
}

// TierAliases is the alias table one configuration tier contributed for a
// given starting directory.
type TierAliases struct {
	Tier       string       `json:"tier"`
	ConfigPath string       `json:"configPath"`
	Entries    []AliasEntry `json:"entries"`
}

// DiscoverAliases reports, per tier, the nearest config file and the alias
// table it yields for files in currentFileDir. Tiers without a config are
// omitted. Intended for diagnostics, not resolution.
func (r *Resolver) DiscoverAliases(currentFileDir, root string) []TierAliases {
	cache := newConfigCache()

	var out []TierAliases
	for _, t := range aliasTiers {
		configPath, ok := cache.nearest(currentFileDir, root, t)
		if !ok {
			continue
		}
		out = append(out, TierAliases{
			Tier:       t.name,
			ConfigPath: configPath,
			Entries:    cache.table(configPath, t),
		})
	}
	return out
}

// resolveBare handles specifiers with no relative, absolute or alias
// marker: first relative to the importing file, then relative to the
// workspace root. Candidate lists from both attempts are kept so a caller
// can display everything that was probed.
func (r *Resolver) resolveBare(spec, currentDir, root string) Result {
	local := finalize(filepath.Join(currentDir, spec), root, r.depMarker)
	if local.Status != StatusNotFound {
		return local
	}

	fromRoot := finalize(filepath.Join(root, spec), root, r.depMarker)
	if fromRoot.Status == StatusNotFound {
		fromRoot.Candidates = append(local.Candidates, fromRoot.Candidates...)
	}
	return fromRoot
}
