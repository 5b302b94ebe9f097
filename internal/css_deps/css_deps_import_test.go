package css_deps

import (
	"testing"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	for _, mode := range []css_ast.Mode{css_ast.ModeCSS, css_ast.ModeLocal, css_ast.ModeGlobal, css_ast.ModePure} {
		dependencies, warnings := CollectDependencies("", mode)
		assert.Empty(t, dependencies)
		assert.Empty(t, warnings)
	}
}

func TestURL(t *testing.T) {
	input := "body {\n" +
		"    background: url(\n" +
		"        https://example\\2f4a8f.com\\\n" +
		"/image.png\n" +
		"    )\n" +
		"}\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 1)
	assertURLDep(t, input, dependencies[0],
		"https://example\\2f4a8f.com\\\n/image.png",
		css_ast.URLFunction,
		"url(\n        https://example\\2f4a8f.com\\\n/image.png\n    )")
}

func TestURLString(t *testing.T) {
	input := "body {\n" +
		"    a: url(\"https://example\\2f4a8f.com\\\n" +
		"    /image.png\");\n" +
		"    b: image-set(\n" +
		"        \"image1.png\" 1x,\n" +
		"        \"image2.png\" 2x\n" +
		"    );\n" +
		"    c: image-set(\n" +
		"        url(image1.avif) type(\"image/avif\"),\n" +
		"        url(\"image2.jpg\") type(\"image/jpeg\")\n" +
		"    );\n" +
		"}\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 5)
	assertURLDep(t, input, dependencies[0],
		"https://example\\2f4a8f.com\\\n    /image.png",
		css_ast.URLString,
		"\"https://example\\2f4a8f.com\\\n    /image.png\"")
	assertURLDep(t, input, dependencies[1], "image1.png", css_ast.URLFunction, "\"image1.png\"")
	assertURLDep(t, input, dependencies[2], "image2.png", css_ast.URLFunction, "\"image2.png\"")
	assertURLDep(t, input, dependencies[3], "image1.avif", css_ast.URLFunction, "url(image1.avif)")
	assertURLDep(t, input, dependencies[4], "image2.jpg", css_ast.URLString, "\"image2.jpg\"")
}

func TestEmptyURL(t *testing.T) {
	input := "@import url();\n" +
		"@import url(\"\");\n" +
		"body {\n" +
		"    a: url();\n" +
		"    b: url(\"\");\n" +
		"    d: image-set(\"\");\n" +
		"    e: image-set(url());\n" +
		"    f: image-set(url(\"\"));\n" +
		"}\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 7)
	assertImportDep(t, input, dependencies[0], "", nil, nil, nil, "@import url();")
	assertImportDep(t, input, dependencies[1], "", nil, nil, nil, "@import url(\"\");")
	assertURLDep(t, input, dependencies[2], "", css_ast.URLFunction, "url()")
	assertURLDep(t, input, dependencies[3], "", css_ast.URLString, "\"\"")
	assertURLDep(t, input, dependencies[4], "", css_ast.URLFunction, "\"\"")
	assertURLDep(t, input, dependencies[5], "", css_ast.URLFunction, "url()")
	assertURLDep(t, input, dependencies[6], "", css_ast.URLString, "\"\"")
}

func TestImport(t *testing.T) {
	input := "@import 'https://example\\2f4a8f.com\\\n" +
		"/style.css';\n" +
		"@import url(https://example\\2f4a8f.com\\\n" +
		"/style.css);\n" +
		"@import url('https://example\\2f4a8f.com\\\n" +
		"/style.css') /* */;\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 3)
	assertImportDep(t, input, dependencies[0],
		"https://example\\2f4a8f.com\\\n/style.css", nil, nil, nil,
		"@import 'https://example\\2f4a8f.com\\\n/style.css';")
	assertImportDep(t, input, dependencies[1],
		"https://example\\2f4a8f.com\\\n/style.css", nil, nil, nil,
		"@import url(https://example\\2f4a8f.com\\\n/style.css);")
	assertImportDep(t, input, dependencies[2],
		"https://example\\2f4a8f.com\\\n/style.css", nil, nil, nil,
		"@import url('https://example\\2f4a8f.com\\\n/style.css') /* */;")
}

func TestImportMedia(t *testing.T) {
	input := "@import url(\"style.css\") screen and (orientation: portrait);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 1)
	assertImportDep(t, input, dependencies[0], "style.css", nil, nil,
		strp(" screen and (orientation: portrait)"),
		"@import url(\"style.css\") screen and (orientation: portrait);")
}

func TestImportAttributes(t *testing.T) {
	input := "@import url(\"style.css\") layer;\n" +
		"@import url(\"style.css\") supports();\n" +
		"@import url(\"style.css\") print;\n" +
		"@import url(\"style.css\") layer supports() /* comments */;\n" +
		"@import url(\"style.css\") layer(default) supports(not (display: grid) and (display: flex)) print, /* comments */ screen and (orientation: portrait);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, warnings)
	require.Len(t, dependencies, 5)
	assertImportDep(t, input, dependencies[0], "style.css", strp(""), nil, nil,
		"@import url(\"style.css\") layer;")
	assertImportDep(t, input, dependencies[1], "style.css", nil, strp(""), nil,
		"@import url(\"style.css\") supports();")
	assertImportDep(t, input, dependencies[2], "style.css", nil, nil, strp(" print"),
		"@import url(\"style.css\") print;")
	assertImportDep(t, input, dependencies[3], "style.css", strp(""), strp(""), nil,
		"@import url(\"style.css\") layer supports() /* comments */;")
	assertImportDep(t, input, dependencies[4], "style.css",
		strp("default"),
		strp("not (display: grid) and (display: flex)"),
		strp(" print, /* comments */ screen and (orientation: portrait)"),
		"@import url(\"style.css\") layer(default) supports(not (display: grid) and (display: flex)) print, /* comments */ screen and (orientation: portrait);")
}

func TestDuplicateURL(t *testing.T) {
	input := "@import url(./a.css) url(./a.css);\n" +
		"@import url(./a.css) url(\"./a.css\");\n" +
		"@import url(\"./a.css\") url(./a.css);\n" +
		"@import url(\"./a.css\") url(\"./a.css\");\n"
	_, warnings := CollectDependencies(input, css_ast.ModeCSS)
	require.Len(t, warnings, 4)
	assertWarning(t, input, warnings[0], css_ast.WarningDuplicateURL, "@import url(./a.css) url(./a.css)")
	assertWarning(t, input, warnings[1], css_ast.WarningDuplicateURL, "@import url(./a.css) url(\"./a.css\"")
	assertWarning(t, input, warnings[2], css_ast.WarningDuplicateURL, "@import url(\"./a.css\") url(./a.css)")
	assertWarning(t, input, warnings[3], css_ast.WarningDuplicateURL, "@import url(\"./a.css\") url(\"./a.css\"")
}

func TestNotPrecededAtImport(t *testing.T) {
	input := "body {}\n@import url(./a.css);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, dependencies)
	require.Len(t, warnings, 1)
	assertWarning(t, input, warnings[0], css_ast.WarningNotPrecededAtImport, "@import")
}

func TestImportPrecedesRules(t *testing.T) {
	input := "@import 'a.css'; body {} @import 'b.css';"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeLocal)
	require.Len(t, dependencies, 1)
	assertImportDep(t, input, dependencies[0], "a.css", nil, nil, nil, "@import 'a.css';")
	require.Len(t, warnings, 1)
	assertWarning(t, input, warnings[0], css_ast.WarningNotPrecededAtImport, "@import")
	assert.Equal(t, int32(25), warnings[0].Range.Loc.Start)
}

func TestExpectedURL(t *testing.T) {
	input := "@import ;\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, dependencies)
	require.Len(t, warnings, 1)
	assertWarning(t, input, warnings[0], css_ast.WarningExpectedURL, "@import ;")
}

func TestUnexpectedSemicolonInSupports(t *testing.T) {
	input := "@import \"style.css\" supports(display: flex; display: grid);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	require.Len(t, dependencies, 1)
	assertImportDep(t, input, dependencies[0], "style.css", nil, nil,
		strp(" supports(display: flex"),
		"@import \"style.css\" supports(display: flex;")
	require.Len(t, warnings, 1)
	assertWarning(t, input, warnings[0], css_ast.WarningUnexpected, ";")
	assert.Equal(t, "Unexpected ';' during parsing of 'supports()'", warnings[0].Text)
}

func TestUnexpectedSemicolonInImportURLString(t *testing.T) {
	input := "@import url(\"style.css\";);\n" +
		"@import url(\"style.css\" layer;);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, dependencies)
	require.Len(t, warnings, 2)
	assertWarning(t, input, warnings[0], css_ast.WarningUnexpected, ";")
	assertWarning(t, input, warnings[1], css_ast.WarningUnexpected, ";")
	assert.Equal(t, "Unexpected ';' during parsing of '@import url()'", warnings[0].Text)
}

func TestExpectedBefore(t *testing.T) {
	input := "@import layer supports(display: flex) \"style.css\";\n" +
		"@import supports(display: flex) \"style.css\";\n" +
		"@import layer \"style.css\";\n" +
		"@import \"style.css\" supports(display: flex) layer;\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, dependencies)
	require.Len(t, warnings, 4)
	assertWarning(t, input, warnings[0], css_ast.WarningExpectedURLBefore, "\"style.css\"")
	assertWarning(t, input, warnings[1], css_ast.WarningExpectedURLBefore, "\"style.css\"")
	assertWarning(t, input, warnings[2], css_ast.WarningExpectedURLBefore, "\"style.css\"")
	assertWarning(t, input, warnings[3], css_ast.WarningExpectedLayerBefore, "layer")
}

func TestNamespace(t *testing.T) {
	input := "@namespace url(http://www.w3.org/1999/xhtml);\n"
	dependencies, warnings := CollectDependencies(input, css_ast.ModeCSS)
	assert.Empty(t, dependencies)
	require.Len(t, warnings, 1)
	assertWarning(t, input, warnings[0], css_ast.WarningNamespaceNotSupportedInBundledCSS, "@namespace")
}
