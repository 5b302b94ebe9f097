package css_deps

import "github.com/ahabhgk/css-module-lexer/internal/logger"

// importData accumulates one "@import" directive between the at-keyword and
// the terminating ";". The URL, layer, and supports pieces arrive out of
// band through the url, string, ident, and right-parenthesis handlers; the
// semicolon handler validates their ordering and emits the dependency.

type importSupportsKind uint8

const (
	supportsNone importSupportsKind = iota

	// A "supports(" frame is open. Strings and urls inside it are part of
	// the supports condition, not the import request.
	supportsInProgress

	supportsEnd
)

type importData struct {
	start int32

	url    string
	hasURL bool

	// For url("...") the range is only known once the ")" arrives, so it is
	// tracked separately from the url itself.
	urlRange    logger.Range
	hasURLRange bool

	supportsKind  importSupportsKind
	supportsValue string
	supportsRange logger.Range

	hasLayer   bool
	layerValue string
	layerRange logger.Range
}

func newImportData(start int32) *importData {
	return &importData{start: start}
}

func (data *importData) inSupports() bool {
	return data.supportsKind == supportsInProgress
}

func (data *importData) layerRangeOrNil() *logger.Range {
	if !data.hasLayer {
		return nil
	}
	return &data.layerRange
}

func (data *importData) supportsRangeOrNil() *logger.Range {
	if data.supportsKind != supportsEnd {
		return nil
	}
	return &data.supportsRange
}
