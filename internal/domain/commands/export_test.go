package commands

// ExtractFormulaName exports extractFormulaName for testing.
var ExtractFormulaName = extractFormulaName //nolint:gochecknoglobals // test export

// ParseBrewVersion exports parseBrewVersion for testing.
var ParseBrewVersion = parseBrewVersion //nolint:gochecknoglobals // test export

// MoveFile exports moveFile for testing.
var MoveFile = moveFile //nolint:gochecknoglobals // test export
