// Copyright (c) 2025 Visvasity LLC

// Command typedview generates the named typed-array variants of a generic
// view type. For example, given
//
//   package views
//
//   type Element interface {
//   	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32
//   }
//
//   type View[T Element] struct { ... }
//
//   func New[T Element](source any, byteOffset int, length ...int) (*View[T], error)
//
// running this command
//
//   typedview -inpkg ./views -outdir ./views Uint8Array=uint8 Int32Array=int32
//
// will create file arrays.viewgen.go in the ./views directory with
//
//   type Uint8Array = View[uint8]
//   const Uint8ArrayBytesPerElement = 1
//   func NewUint8Array(source any, byteOffset int, length ...int) (*Uint8Array, error)
//
//   type Int32Array = View[int32]
//   const Int32ArrayBytesPerElement = 4
//   func NewInt32Array(source any, byteOffset int, length ...int) (*Int32Array, error)
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/visvasity/typedview/typecheck"
	"golang.org/x/tools/go/packages"
)

var (
	inPkg   = flag.String("inpkg", ".", "package path/name with the generic view type")
	outPkg  = flag.String("outpkg", "", "package name for the generated file")
	outDir  = flag.String("outdir", "", "output directory for the generated file")
	outFile = flag.String("outfile", "arrays.viewgen.go", "name of the generated file")
	viewTyp = flag.String("type", "View", "name of the generic view type")
	newFunc = flag.String("new", "New", "name of the generic constructor function")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of typedview:\n")
	fmt.Fprintf(os.Stderr, "\ttypedview -inpkg '...' -outdir '...' Name=element... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("typedview: ")

	flag.Usage = Usage
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *outDir == "" {
		log.Fatalf("output directory must be set with -outdir flag")
	}

	variants, err := parseVariants(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	pkg, err := loadPackage(*inPkg)
	if err != nil {
		log.Fatal(err)
	}

	if len(*outPkg) == 0 {
		s := pkg.Name
		outPkg = &s
	}

	g := newGenerator(*outPkg, *viewTyp, *newFunc)
	if err := g.check(pkg.Types); err != nil {
		log.Fatal(err)
	}
	for _, v := range variants {
		if err := g.generate(v); err != nil {
			log.Fatal(err)
		}
	}

	outputName := filepath.Join(*outDir, *outFile)
	if err := os.WriteFile(outputName, g.Source(), 0644); err != nil {
		log.Fatalf("writing output: %s", err)
	}
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages; want exactly one", pkg, len(pkgs))
	}
	if pkgs[0].Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg)
	}
	return pkgs[0], nil
}

// Variant names one typed-array type and its element type.
type Variant struct {
	Name    string
	Element string
}

func parseVariants(args []string) ([]*Variant, error) {
	seen := make(map[string]bool)
	var vs []*Variant
	for _, arg := range args {
		name, elem, ok := strings.Cut(arg, "=")
		if !ok || !isIdent(name) || !isIdent(elem) {
			return nil, fmt.Errorf("invalid variant %q: want Name=element", arg)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate variant %q", name)
		}
		seen[name] = true
		vs = append(vs, &Variant{Name: name, Element: elem})
	}
	return vs, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		if r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || i > 0 && '0' <= r && r <= '9' {
			continue
		}
		return false
	}
	return s != ""
}

// article returns the indefinite article for an identifier read as a word.
// A leading U is read as "you".
func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOaeio", rune(name[0])) {
		return "an"
	}
	return "a"
}

type Generator struct {
	pkgName  string
	typeName string
	newName  string

	view *typecheck.ViewData

	buf bytes.Buffer
}

func newGenerator(pkgName, typeName, newName string) *Generator {
	g := &Generator{
		pkgName:  pkgName,
		typeName: typeName,
		newName:  newName,
	}
	g.P("// Code generated by github.com/visvasity/typedview. DO NOT EDIT.")
	g.P()
	g.P("package ", pkgName)
	return g
}

// check looks up the view type and the constructor in pkg.
func (g *Generator) check(pkg *types.Package) error {
	obj := pkg.Scope().Lookup(g.typeName)
	if obj == nil {
		return fmt.Errorf("type %s not found in package %s", g.typeName, pkg.Path())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return fmt.Errorf("%s is not a type in package %s", g.typeName, pkg.Path())
	}

	checker := typecheck.New()
	if err := checker.Check(tn); err != nil {
		return err
	}
	g.view = checker.ViewDataMap()[g.typeName]

	fn, ok := pkg.Scope().Lookup(g.newName).(*types.Func)
	if !ok {
		return fmt.Errorf("function %s not found in package %s", g.newName, pkg.Path())
	}
	if sig := fn.Type().(*types.Signature); sig.TypeParams().Len() != 1 || !sig.Variadic() {
		return fmt.Errorf("function %s must take one type parameter and a variadic length", g.newName)
	}
	return nil
}

func (g *Generator) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&g.buf, x)
	}
	fmt.Fprintln(&g.buf)
}

func (g *Generator) generate(v *Variant) error {
	elem, ok := g.view.Element(v.Element)
	if !ok {
		return fmt.Errorf("element type %s of %s is not allowed by %s", v.Element, v.Name, g.view.Constraint)
	}
	sign := "unsigned"
	if elem.Signed {
		sign = "signed"
	}

	g.P()
	g.P("// ", v.Name, " is a ", g.typeName, " of ", elem.Size, "-byte ", sign, " integers.")
	g.P("type ", v.Name, " = ", g.typeName, "[", elem.Name, "]")
	g.P()
	g.P("// ", v.Name, "BytesPerElement is the element size of ", v.Name, " in bytes.")
	g.P("const ", v.Name, "BytesPerElement = ", elem.Size)
	g.P()
	g.P("// ", g.newName, v.Name, " creates ", article(v.Name), " ", v.Name, " from source. See ", g.newName, " for the accepted")
	g.P("// sources.")
	g.P("func ", g.newName, v.Name, "(source any, byteOffset int, length ...int) (*", v.Name, ", error) {")
	g.P("return ", g.newName, "[", elem.Name, "](source, byteOffset, length...)")
	g.P("}")
	return nil
}

// Source returns the gofmt-ed generated file.
func (g *Generator) Source() []byte {
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return g.buf.Bytes()
	}
	return src
}
