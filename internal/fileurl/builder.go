// Package fileurl normalises the file references stored in the search index into
// one canonical absolute URL form.
//
// The index holds relative paths written by the current pipeline, absolute URLs on
// the legacy storage, and absolute URLs already on the current storage. Build maps
// all of them onto the configured files endpoint and is idempotent.
package fileurl

import (
	"strings"
)

const defaultScheme = "https"

var absoluteSchemes = []string{"http", "https", "s3"}

// LegacyHosts are storage hosts whose paths are rewritten onto the files endpoint.
var LegacyHosts = map[string]struct{}{
	"querido-diario.nyc3.cdn.digitaloceanspaces.com": {},
	"queridodiario.nyc3.cdn.digitaloceanspaces.com":  {},
	"okbr-qd-historico":                             {},
}

type Builder struct {
	scheme         string
	endpoint       string
	replaceEnabled bool
}

// New returns a Builder for the given endpoint. The endpoint may carry a scheme
// ("https://data.example.org/"); https is assumed when it does not.
func New(cfg Config) *Builder {
	scheme, rest := splitScheme(strings.TrimSpace(cfg.Endpoint))
	if scheme == "" {
		scheme = defaultScheme
	}
	return &Builder{
		scheme:         scheme,
		endpoint:       strings.TrimRight(rest, "/"),
		replaceEnabled: cfg.ReplaceEnabled,
	}
}

// Build returns the canonical form of value.
func (b *Builder) Build(value string) string {
	if value == "" {
		return value
	}

	scheme, rest := splitScheme(value)
	if scheme == "" {
		return b.buildRelative(value)
	}

	if !b.replaceEnabled || b.endpoint == "" {
		return value
	}

	if rest == b.endpoint || strings.HasPrefix(rest, b.endpoint+"/") {
		return value
	}

	host, path, _ := strings.Cut(rest, "/")
	if _, ok := LegacyHosts[strings.ToLower(host)]; ok {
		return b.join(path)
	}

	return value
}

// BuildPtr applies Build to an optional value.
func (b *Builder) BuildPtr(value *string) *string {
	if value == nil {
		return nil
	}
	built := b.Build(*value)
	return &built
}

func (b *Builder) buildRelative(value string) string {
	if b.endpoint == "" {
		return value
	}

	path := strings.TrimLeft(value, "/")
	if path == b.endpoint || strings.HasPrefix(path, b.endpoint+"/") {
		return b.scheme + "://" + path
	}
	return b.join(path)
}

func (b *Builder) join(path string) string {
	return b.scheme + "://" + b.endpoint + "/" + strings.TrimLeft(path, "/")
}

// splitScheme returns the recognised absolute scheme of s and the remainder after "://".
// scheme is empty when s is relative.
func splitScheme(s string) (scheme string, rest string) {
	prefix, after, found := strings.Cut(s, "://")
	if !found {
		return "", s
	}
	lower := strings.ToLower(prefix)
	for _, known := range absoluteSchemes {
		if lower == known {
			return lower, after
		}
	}
	return "", s
}
