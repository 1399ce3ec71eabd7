// Package app implements the application layer for hackidx.
package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/hackidx/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache  ports.MetadataCache
	logger ports.Logger
}

// New creates a new App instance.
func New(cache ports.MetadataCache, log ports.Logger) *App {
	return &App{cache: cache, logger: log}
}

// Components bundles the wired application pieces handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ListOptions configures the List method.
type ListOptions struct {
	// PreferredOnly restricts output to versions inside the preferred range.
	PreferredOnly bool
	// All expands every version inline instead of printing counts.
	All bool
}

// List writes one line per package: name, version count, and preferred
// range. Packages are sorted by name.
func (a *App) List(w io.Writer, repo string, opts ListOptions) error {
	md, err := a.cache.Metadata(repo)
	if err != nil {
		return err
	}

	for _, name := range sortedNames(md) {
		info := md[name]
		versions := info.Versions
		if opts.PreferredOnly {
			versions = info.PreferredVersions()
		}

		var detail string
		if opts.All {
			rendered := make([]string, 0, len(versions))
			for _, v := range sortedVersionKeys(versions) {
				rendered = append(rendered, v.String())
			}
			detail = strings.Join(rendered, " ")
		} else {
			detail = fmt.Sprintf("%d versions, preferred %s", len(versions), info.Preferred)
		}

		line := fmt.Sprintf("%s  %s",
			style.PackageName.Render(name.String()),
			style.Muted.Render(detail),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return zerr.Wrap(err, "failed to write listing")
		}
	}
	return nil
}

// Show writes every release of one package: version, revision, and both
// hashes, with versions outside the preferred range marked.
func (a *App) Show(w io.Writer, repo string, pkg string) error {
	name, err := domain.ParsePackageName(pkg)
	if err != nil {
		return err
	}

	md, err := a.cache.Metadata(repo)
	if err != nil {
		return err
	}
	info, ok := md[name]
	if !ok {
		return zerr.With(domain.ErrPackageNotFound, "package", pkg)
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n",
		style.PackageName.Render(pkg),
		style.Muted.Render("preferred "+info.Preferred.String()),
	)

	for _, v := range sortedVersionKeys(info.Versions) {
		rel := info.Versions[v]
		marker := style.Preferred.Render(style.Check)
		if !info.Preferred.Contains(v) {
			marker = style.Deprecated.Render(style.Warning)
		}
		_, _ = fmt.Fprintf(w, "  %s %-16s r%-4d manifest=%s tarball=%s\n",
			marker,
			v.String(),
			rel.Revision,
			style.Muted.Render(rel.ManifestHash.String()),
			style.Muted.Render(rel.TarballHash.String()),
		)
	}
	return nil
}

// Refresh rebuilds the metadata snapshot for repo unconditionally.
func (a *App) Refresh(repo string) error {
	md, err := a.cache.Refresh(repo)
	if err != nil {
		return err
	}
	a.logger.Info("snapshot refreshed", "repository", repo, "packages", len(md))
	return nil
}

func sortedNames(md domain.Metadata) []domain.PackageName {
	names := make([]domain.PackageName, 0, len(md))
	for name := range md {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func sortedVersionKeys(versions map[domain.Version]domain.ReleaseInfo) []domain.Version {
	keys := make([]domain.Version, 0, len(versions))
	for v := range versions {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool {
		return domain.CompareVersions(keys[i], keys[j]) < 0
	})
	return keys
}
