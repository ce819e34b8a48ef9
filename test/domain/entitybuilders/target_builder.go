//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

// TargetBuilder helps create test resolved targets with a fluent interface.
type TargetBuilder struct {
	*testkit.BaseBuilder
	formula      string
	sourceURL    string
	tap          string
	defaultedTap bool
	layout       entities.LayoutVariant
	nameGuessed  bool
}

// NewTargetBuilder creates a new target builder with sensible defaults.
func NewTargetBuilder() *TargetBuilder {
	return &TargetBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		formula:     "doxygen",
		sourceURL:   "https://raw.githubusercontent.com/Homebrew/homebrew-core/abc123/Formula/d/doxygen.rb",
		tap:         "tester/local",
		layout:      entities.LayoutSharded,
	}
}

// WithFormula sets the formula name.
func (b *TargetBuilder) WithFormula(formula string) *TargetBuilder {
	b.formula = formula
	return b
}

// WithSourceURL sets the canonical source URL.
func (b *TargetBuilder) WithSourceURL(url string) *TargetBuilder {
	b.sourceURL = url
	return b
}

// WithTap sets the tap name.
func (b *TargetBuilder) WithTap(tap string) *TargetBuilder {
	b.tap = tap
	return b
}

// WithDefaultedTap marks the tap as defaulted.
func (b *TargetBuilder) WithDefaultedTap(defaulted bool) *TargetBuilder {
	b.defaultedTap = defaulted
	return b
}

// WithLayout sets the layout variant.
func (b *TargetBuilder) WithLayout(layout entities.LayoutVariant) *TargetBuilder {
	b.layout = layout
	return b
}

// WithNameGuessed marks the formula name as a best-effort guess.
func (b *TargetBuilder) WithNameGuessed(guessed bool) *TargetBuilder {
	b.nameGuessed = guessed
	return b
}

// Build creates the target (satisfies testkit.Builder interface).
func (b *TargetBuilder) Build() interface{} {
	return b.BuildTarget()
}

// BuildTarget creates the target with a concrete return type.
func (b *TargetBuilder) BuildTarget() entities.ResolvedTarget {
	return entities.ResolvedTarget{
		Formula:      b.formula,
		SourceURL:    b.sourceURL,
		Tap:          b.tap,
		DefaultedTap: b.defaultedTap,
		Layout:       b.layout,
		NameGuessed:  b.nameGuessed,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *TargetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.formula = "doxygen"
	b.sourceURL = "https://raw.githubusercontent.com/Homebrew/homebrew-core/abc123/Formula/d/doxygen.rb"
	b.tap = "tester/local"
	b.defaultedTap = false
	b.layout = entities.LayoutSharded
	b.nameGuessed = false
	return b
}

// Clone creates a deep copy of the TargetBuilder.
func (b *TargetBuilder) Clone() testkit.Builder {
	return &TargetBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		formula:      b.formula,
		sourceURL:    b.sourceURL,
		tap:          b.tap,
		defaultedTap: b.defaultedTap,
		layout:       b.layout,
		nameGuessed:  b.nameGuessed,
	}
}
