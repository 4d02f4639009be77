// Package tmpl implements the page blueprint language: plain HTML with
// positional `{}`, named `{key}`, and conditional `{?key:A|B}` placeholders.
package tmpl

import (
	"fmt"
	"strings"
)

// Template is an immutable blueprint. Parse validates the conditional
// grammar up front so Render never has to fail.
type Template struct {
	content string
}

// Parse validates the blueprint and returns it as a Template. A `{?` marker
// without a following `|` and `}` is a configuration error: the blueprint is
// broken, not the render arguments.
func Parse(content string) (*Template, error) {
	for i := 0; ; {
		j := strings.Index(content[i:], "{?")
		if j < 0 {
			break
		}
		j += i
		bar := strings.IndexByte(content[j:], '|')
		if bar < 0 {
			return nil, fmt.Errorf("conditional at offset %d: missing '|'", j)
		}
		if strings.IndexByte(content[j+bar:], '}') < 0 {
			return nil, fmt.Errorf("conditional at offset %d: missing '}'", j)
		}
		i = j + 2
	}
	return &Template{content: content}, nil
}

// Must panics if err is non-nil. For blueprints embedded in the binary,
// which are validated once at startup.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// Content returns the raw blueprint, so a template can be supplied as the
// value for another template's placeholder.
func (t *Template) Content() string {
	return t.content
}

type argKind int

const (
	argText argKind = iota
	argPositional
	argBool
)

// Arg is a single render argument: literal text for a named or positional
// placeholder, or a flag selecting between a conditional's alternatives.
type Arg struct {
	kind argKind
	key  string
	text string
	flag bool
}

// Text fills every `{key}` placeholder with value.
func Text(key, value string) Arg {
	return Arg{kind: argText, key: key, text: value}
}

// Positional fills the next unused `{}` placeholder with value.
func Positional(value string) Arg {
	return Arg{kind: argPositional, text: value}
}

// Bool resolves every `{?key:A|B}` fragment: A if value is true, B otherwise.
func Bool(key string, value bool) Arg {
	return Arg{kind: argBool, key: key, flag: value}
}

// Nested supplies another template's blueprint as the value for `{key}`.
func Nested(key string, t *Template) Arg {
	return Text(key, t.content)
}

// Render substitutes args into the blueprint left to right and returns the
// result. It never mutates the template and is safe for concurrent use.
// Any `{}` placeholders left unfilled are deleted in a final sweep.
func (t *Template) Render(args ...Arg) string {
	content := t.content
	for _, a := range args {
		switch a.kind {
		case argText:
			content = strings.ReplaceAll(content, "{"+a.key+"}", a.text)
		case argPositional:
			content = strings.Replace(content, "{}", a.text, 1)
		case argBool:
			content = substituteBool(content, a.key, a.flag)
		}
	}
	return strings.ReplaceAll(content, "{}", "")
}

// substituteBool resolves every `{?key:A|B}` occurrence. The first `|` after
// the key marker splits the alternatives and the first `}` after that ends
// the fragment; a literal `|` or `}` inside A or B is not supported. The
// search resumes at the substitution point so repeated keys are all resolved
// without rescanning the prefix.
func substituteBool(content, key string, value bool) string {
	marker := "{?" + key + ":"
	idx := 0
	for {
		start := strings.Index(content[idx:], marker)
		if start < 0 {
			return content
		}
		start += idx
		rel := strings.IndexByte(content[start+len(marker):], '|')
		if rel < 0 {
			return content
		}
		mid := start + len(marker) + rel
		relEnd := strings.IndexByte(content[mid:], '}')
		if relEnd < 0 {
			return content
		}
		end := mid + relEnd

		var repl string
		if value {
			repl = content[start+len(marker) : mid]
		} else {
			repl = strings.TrimSpace(content[mid+1 : end])
		}
		content = content[:start] + repl + content[end+1:]
		idx = start
	}
}
