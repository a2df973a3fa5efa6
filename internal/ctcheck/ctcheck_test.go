package ctcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const target = "github.com/go-i2p/ffdh"

func load(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, target)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("package %s has errors", target)
	}
	return pkgs
}

// inspect calls fn on every node of every non-test file in the package and
// fails the test with the collected findings.
func inspect(t *testing.T, policy string, fn func(pkg *packages.Package, n ast.Node) string) {
	t.Helper()
	var findings []string
	for _, pkg := range load(t) {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				if n == nil {
					return true
				}
				if msg := fn(pkg, n); msg != "" {
					findings = append(findings, fmt.Sprintf("%s: %s", pkg.Fset.Position(n.Pos()), msg))
				}
				return true
			})
		}
	}
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}

func TestNoByteSliceEquality(t *testing.T) {
	inspect(t, "constant-time", func(pkg *packages.Package, n ast.Node) string {
		be, ok := n.(*ast.BinaryExpr)
		if !ok || (be.Op != token.EQL && be.Op != token.NEQ) {
			return ""
		}
		if isByteSlice(pkg.TypesInfo.TypeOf(be.X)) && isByteSlice(pkg.TypesInfo.TypeOf(be.Y)) {
			return "avoid == on byte slices; use crypto/subtle"
		}
		return ""
	})
}

func TestNoVariableTimeCalls(t *testing.T) {
	forbidden := map[string]string{
		"bytes.Equal":         "use crypto/subtle.ConstantTimeCompare",
		"bytes.Compare":       "use crypto/subtle.ConstantTimeCompare",
		"(*math/big.Int).Exp": "use filippo.io/bigmod for modular exponentiation",
	}
	inspect(t, "constant-time", func(pkg *packages.Package, n ast.Node) string {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return ""
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return ""
		}
		fn, ok := pkg.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok {
			return ""
		}
		if hint, ok := forbidden[fn.FullName()]; ok {
			return fmt.Sprintf("call to %s; %s", fn.FullName(), hint)
		}
		return ""
	})
}

func TestNoHexFormatting(t *testing.T) {
	inspect(t, "secret formatting", func(pkg *packages.Package, n ast.Node) string {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return ""
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return ""
		}
		obj := pkg.TypesInfo.Uses[sel.Sel]
		if obj == nil || obj.Pkg() == nil {
			return ""
		}
		idx, ok := formatIndex(obj.Pkg().Path(), obj.Name())
		if !ok || len(call.Args) <= idx {
			return ""
		}
		lit, ok := call.Args[idx].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return ""
		}
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return ""
		}
		if strings.Contains(s, "%x") || strings.Contains(s, "%X") {
			return "avoid %x formatting of key material"
		}
		return ""
	})
}

func formatIndex(pkgPath, name string) (int, bool) {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Errorf", "Printf", "Sprintf":
			return 0, true
		case "Fprintf":
			return 1, true
		}
	case "log":
		switch name {
		case "Printf", "Fatalf", "Panicf":
			return 0, true
		}
	}
	return 0, false
}

func isByteSlice(typ types.Type) bool {
	switch tt := typ.(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Array:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isByteSlice(tt.Elem())
	case *types.Named:
		return isByteSlice(tt.Underlying())
	}
	return false
}

func isByte(t types.Type) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == types.Byte
}
