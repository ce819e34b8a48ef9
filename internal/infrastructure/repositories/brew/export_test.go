package brew

// TapListContains exports tapListContains for testing.
var TapListContains = tapListContains //nolint:gochecknoglobals // test export

// WrapBrewError exports wrapBrewError for testing.
var WrapBrewError = wrapBrewError //nolint:gochecknoglobals // test export
