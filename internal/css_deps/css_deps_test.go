package css_deps

import (
	"testing"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeText(input string, r logger.Range) string {
	return input[r.Loc.Start:r.End()]
}

func strp(s string) *string {
	return &s
}

func assertURLDep(t *testing.T, input string, dep css_ast.Dependency, request string, kind css_ast.URLKind, rangeContent string) {
	t.Helper()
	url, ok := dep.(css_ast.DepURL)
	require.True(t, ok, "expected DepURL, got %T", dep)
	assert.Equal(t, request, url.Request)
	assert.Equal(t, kind, url.Kind)
	assert.Equal(t, rangeContent, rangeText(input, url.Range))
}

func assertImportDep(t *testing.T, input string, dep css_ast.Dependency, request string, layer *string, supports *string, media *string, rangeContent string) {
	t.Helper()
	imp, ok := dep.(css_ast.DepImport)
	require.True(t, ok, "expected DepImport, got %T", dep)
	assert.Equal(t, request, imp.Request)
	assert.Equal(t, layer, imp.Layer)
	assert.Equal(t, supports, imp.Supports)
	assert.Equal(t, media, imp.Media)
	assert.Equal(t, rangeContent, rangeText(input, imp.Range))
}

func assertReplaceDep(t *testing.T, input string, dep css_ast.Dependency, content string, rangeContent string) {
	t.Helper()
	replace, ok := dep.(css_ast.DepReplace)
	require.True(t, ok, "expected DepReplace, got %T", dep)
	assert.Equal(t, content, replace.Content)
	assert.Equal(t, rangeContent, rangeText(input, replace.Range))
}

func assertLocalClassDep(t *testing.T, input string, dep css_ast.Dependency, name string, explicit bool) {
	t.Helper()
	class, ok := dep.(css_ast.DepLocalClass)
	require.True(t, ok, "expected DepLocalClass, got %T", dep)
	assert.Equal(t, name, class.Name)
	assert.Equal(t, explicit, class.Explicit)
	assert.Equal(t, name, rangeText(input, class.Range))
}

func assertWarning(t *testing.T, input string, warning css_ast.Warning, kind css_ast.WarningKind, rangeContent string) {
	t.Helper()
	assert.Equal(t, kind, warning.Kind)
	assert.Equal(t, rangeContent, rangeText(input, warning.Range))
}
