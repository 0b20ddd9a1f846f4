// Package gen expands hex literals into Go source. Each expansion captures
// its literal exactly once and derives the array length from that single
// capture, so the declared size and the decoded bytes cannot drift apart.
package gen

import (
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"go.codycody31.dev/hexlit"
)

// Const pairs a Go identifier with the hex literal it decodes.
type Const struct {
	Name string `toml:"name"`
	Hex  string `toml:"hex"`
}

// Expr expands a hex literal into a fixed-size array expression, e.g.
// "[3]byte{0x01, 0x0a, 0xff}". The element count is len(literal)/2;
// invalid hex fails the expansion before anything is emitted.
func Expr(literal string) (string, error) {
	buf := make([]byte, len(literal)/2)
	if err := hexlit.DecodeInto(buf, literal); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d]byte{", len(buf))
	for i, b := range buf {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// ConstDecl expands a named-constant form into a var declaration whose
// element count is derived from the literal, with the source literal kept
// as a trailing comment.
func ConstDecl(name, literal string) (string, error) {
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("%q is not a valid Go identifier", name)
	}
	expr, err := Expr(literal)
	if err != nil {
		return "", fmt.Errorf("constant %s: %w", name, err)
	}
	return fmt.Sprintf("var %s = %s // %s", name, expr, literal), nil
}

// File renders a complete generated Go source file declaring every constant,
// gofmt'd and carrying the standard generated-code marker.
func File(pkg string, consts []Const) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%q is not a valid package name", pkg)
	}
	if len(consts) == 0 {
		return nil, fmt.Errorf("no constants to generate")
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by hexgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	seen := make(map[string]bool, len(consts))
	for _, c := range consts {
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate constant name %q", c.Name)
		}
		seen[c.Name] = true

		decl, err := ConstDecl(c.Name, c.Hex)
		if err != nil {
			return nil, err
		}
		sb.WriteString(decl)
		sb.WriteString("\n")
	}

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}
