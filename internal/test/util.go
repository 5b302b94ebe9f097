package test

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
}

func AssertEqualWithDiff(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		stringA := fmt.Sprintf("%v", a)
		stringB := fmt.Sprintf("%v", b)
		if strings.Contains(stringA, "\n") {
			color := runtime.GOOS != "windows"
			t.Fatal(diff(stringB, stringA, color))
		} else {
			t.Fatalf("%v != %v", a, b)
		}
	}
}

func SourceForTest(contents string) logger.Source {
	return logger.Source{
		PrettyPath: "<stdin>",
		Contents:   contents,
	}
}
