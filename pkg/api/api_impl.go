package api

import (
	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_deps"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

func convertMode(mode Mode) css_ast.Mode {
	switch mode {
	case ModeLocal:
		return css_ast.ModeLocal
	case ModeGlobal:
		return css_ast.ModeGlobal
	case ModePure:
		return css_ast.ModePure
	case ModeCSS:
		return css_ast.ModeCSS
	default:
		panic("Invalid mode")
	}
}

func convertRange(r logger.Range) Range {
	return Range{Start: r.Loc.Start, End: r.End()}
}

func convertDependency(dependency css_ast.Dependency) Dependency {
	switch d := dependency.(type) {
	case css_ast.DepURL:
		kind := URLFunction
		if d.Kind == css_ast.URLString {
			kind = URLString
		}
		return URL{Request: d.Request, Range: convertRange(d.Range), Kind: kind}
	case css_ast.DepImport:
		return Import{
			Request:  d.Request,
			Range:    convertRange(d.Range),
			Layer:    d.Layer,
			Supports: d.Supports,
			Media:    d.Media,
		}
	case css_ast.DepReplace:
		return Replace{Content: d.Content, Range: convertRange(d.Range)}
	case css_ast.DepLocalClass:
		return LocalClass{Name: d.Name, Range: convertRange(d.Range), Explicit: d.Explicit}
	case css_ast.DepLocalID:
		return LocalID{Name: d.Name, Range: convertRange(d.Range), Explicit: d.Explicit}
	case css_ast.DepLocalVar:
		return LocalVar{Name: d.Name, Range: convertRange(d.Range), From: d.From}
	case css_ast.DepLocalVarDecl:
		return LocalVarDecl{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalPropertyDecl:
		return LocalPropertyDecl{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalKeyframes:
		return LocalKeyframes{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalKeyframesDecl:
		return LocalKeyframesDecl{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalCounterStyle:
		return LocalCounterStyle{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalCounterStyleDecl:
		return LocalCounterStyleDecl{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalFontPalette:
		return LocalFontPalette{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepLocalFontPaletteDecl:
		return LocalFontPaletteDecl{Name: d.Name, Range: convertRange(d.Range)}
	case css_ast.DepComposes:
		return Composes{
			LocalClasses: d.LocalClasses,
			Names:        d.Names,
			From:         d.From,
			Range:        convertRange(d.Range),
		}
	case css_ast.DepICSSImportFrom:
		return ICSSImportFrom{Path: d.Path}
	case css_ast.DepICSSImportValue:
		return ICSSImportValue{Prop: d.Prop, Value: d.Value}
	case css_ast.DepICSSExportValue:
		return ICSSExportValue{Prop: d.Prop, Value: d.Value}
	default:
		panic("Invalid dependency")
	}
}

func convertWarning(warning css_ast.Warning) Warning {
	return Warning{
		Kind:  WarningKind(warning.Kind),
		Range: convertRange(warning.Range),
		Text:  warning.Text,
	}
}

func lexImpl(input string, mode Mode, onDependency func(Dependency), onWarning func(Warning)) {
	css_deps.Lex(input,
		convertMode(mode),
		func(dependency css_ast.Dependency) { onDependency(convertDependency(dependency)) },
		func(warning css_ast.Warning) { onWarning(convertWarning(warning)) })
}

func collectDependenciesImpl(input string, mode Mode) (dependencies []Dependency, warnings []Warning) {
	lexImpl(input,
		mode,
		func(dependency Dependency) { dependencies = append(dependencies, dependency) },
		func(warning Warning) { warnings = append(warnings, warning) })
	return
}
