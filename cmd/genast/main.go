/*
File   : oxa/cmd/genast/main.go
Package: main
*/

// Command genast regenerates ast/expr.go and ast/stmt.go from a compact
// grammar description. It is a build-time tool only; its output is checked
// in and hand-reconciled, not run as part of the normal build.
package main

import (
	"fmt"
	"os"
	"strings"
)

// nodeSpec describes one AST struct: its name and "FieldName Type" pairs.
type nodeSpec struct {
	name   string
	fields []string
}

var exprNodes = []nodeSpec{
	{"Assign", []string{"Name token.Token", "Value Expr"}},
	{"Binary", []string{"Left Expr", "Operator token.Token", "Right Expr"}},
	{"Grouping", []string{"Expression Expr"}},
	{"Literal", []string{"Value token.Literal"}},
	{"Unary", []string{"Operator token.Token", "Right Expr"}},
	{"Variable", []string{"Name token.Token"}},
}

var stmtNodes = []nodeSpec{
	{"Expression", []string{"Expression Expr"}},
	{"Print", []string{"Expression Expr"}},
	{"Let", []string{"Name token.Token", "Initializer Expr"}},
	{"Const", []string{"Name token.Token", "Initializer Expr"}},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genast <output-dir>")
		os.Exit(1)
	}
	dir := os.Args[1]

	if err := writeDefinitions(dir+"/expr.go", "ast", "Expr", "exprNode", exprNodes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeDefinitions(dir+"/stmt.go", "ast", "Stmt", "stmtNode", stmtNodes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeDefinitions emits a Go source file declaring the interface and one
// struct per spec, each with the marker method pattern the handwritten
// definitions in ast/expr.go and ast/stmt.go use. This mirrors the shape of the checked-in ast package; it
// does not reproduce their String() debug forms, which are written by hand.
func writeDefinitions(path, pkg, iface, marker string, specs []nodeSpec) error {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "type %s interface {\n\t%s()\n}\n\n", iface, marker)

	for _, spec := range specs {
		fmt.Fprintf(&b, "type %s struct {\n", spec.name)
		for _, field := range spec.fields {
			fmt.Fprintf(&b, "\t%s\n", field)
		}
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func (*%s) %s() {}\n\n", spec.name, marker)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
