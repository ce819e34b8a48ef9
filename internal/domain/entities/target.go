package entities

import (
	"fmt"
	"strings"
)

// FormulaExtension is the file extension of a Homebrew formula definition.
const FormulaExtension = ".rb"

// FormulaDirectory is the subdirectory of a tap that holds formula files.
const FormulaDirectory = "Formula"

// LayoutVariant identifies which homebrew-core path convention produced
// the canonical source URL.
type LayoutVariant int

const (
	LayoutUnknown LayoutVariant = iota
	// LayoutSharded is the newer letter-sharded layout: Formula/<letter>/<name>.rb
	LayoutSharded
	// LayoutFlat is the legacy flat layout: Formula/<name>.rb
	LayoutFlat
	// LayoutExplicit means the user supplied the URL verbatim and no
	// resolution took place.
	LayoutExplicit
)

func (v LayoutVariant) String() string {
	switch v {
	case LayoutSharded:
		return "sharded"
	case LayoutFlat:
		return "flat"
	case LayoutExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// ResolvedTarget is the single verified outcome of the classify/resolve
// pipeline. It is read-only once created.
type ResolvedTarget struct {
	Formula      string
	SourceURL    string
	Tap          string
	DefaultedTap bool
	Layout       LayoutVariant
	// NameGuessed is set when the formula name was taken from the raw
	// final path segment as a best-effort guess.
	NameGuessed bool
}

// Validate enforces the invariant that both formula and source URL are
// known before any network fetch is attempted.
func (t *ResolvedTarget) Validate() error {
	if t.Formula == "" {
		return NewUsageError("could not determine a formula name")
	}
	if t.SourceURL == "" {
		return NewUsageError("could not determine a source URL for formula %q", t.Formula)
	}
	return nil
}

// QualifiedName returns the tap-qualified formula name used for install.
func (t *ResolvedTarget) QualifiedName() string {
	return t.Tap + "/" + t.Formula
}

// FileName returns the formula's definition file name.
func (t *ResolvedTarget) FileName() string {
	return t.Formula + FormulaExtension
}

// CandidateURLs is the pair of layout-variant URLs derivable from a bare
// commit identifier and a formula name. Exactly one is chosen as canonical
// per run based on existence probing.
type CandidateURLs struct {
	Sharded string
	Flat    string
}

// NewCandidateURLs builds both candidate URLs for the given raw content
// root, commit identifier, and formula name.
func NewCandidateURLs(rawRoot, commit, formula string) CandidateURLs {
	root := strings.TrimSuffix(rawRoot, "/")
	shard := strings.ToLower(formula[:1])
	return CandidateURLs{
		Sharded: fmt.Sprintf("%s/%s/%s/%s/%s%s", root, commit, FormulaDirectory, shard, formula, FormulaExtension),
		Flat:    fmt.Sprintf("%s/%s/%s/%s%s", root, commit, FormulaDirectory, formula, FormulaExtension),
	}
}
