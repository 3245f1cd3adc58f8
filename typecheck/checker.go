// Copyright (c) 2025 Visvasity LLC

// Package typecheck inspects a generic view type and its element constraint
// with go/types so that code can be generated for each element type.
package typecheck

import (
	"fmt"
	"go/types"
	"runtime"

	"golang.org/x/tools/go/types/typeutil"
)

type ElementData struct {
	Name string // One of [uint8|int8|uint16|int16|uint32|int32] or a named type

	Kind  string // Underlying basic kind name
	Tilde bool

	Size   int64
	Signed bool
}

type ViewData struct {
	TypeName string

	PkgPath string
	PkgName string

	TypeParam  string
	Constraint string

	Elements []*ElementData
}

// Element returns the element with the given name, if any.
func (vd *ViewData) Element(name string) (*ElementData, bool) {
	for _, e := range vd.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

type Checker struct {
	sizer types.Sizes

	seen typeutil.Map // map[types.Type]bool

	viewDataMap map[string]*ViewData
}

func New() *Checker {
	sizer := types.SizesFor(runtime.Compiler, runtime.GOARCH)
	if sizer == nil {
		sizer = types.SizesFor("gc", "amd64")
	}
	return &Checker{
		sizer:       sizer,
		viewDataMap: make(map[string]*ViewData),
	}
}

func (c *Checker) ViewDataMap() map[string]*ViewData {
	return c.viewDataMap
}

// Check verifies that typename is a generic type with a single type parameter
// whose constraint is a union of fixed-size integer types, and records the
// element types in the ViewDataMap.
func (c *Checker) Check(typename *types.TypeName) error {
	named, ok := typename.Type().(*types.Named)
	if !ok {
		return fmt.Errorf("type %s is not a named type", typename.Name())
	}
	tps := named.TypeParams()
	if tps == nil || tps.Len() != 1 {
		return fmt.Errorf("type %s must have exactly one type parameter", typename.Name())
	}
	tp := tps.At(0)

	vdata := &ViewData{
		TypeName:   typename.Name(),
		TypeParam:  tp.Obj().Name(),
		Constraint: types.TypeString(tp.Constraint(), types.RelativeTo(typename.Pkg())),
	}
	if pkg := typename.Pkg(); pkg != nil {
		vdata.PkgPath = pkg.Path()
		vdata.PkgName = pkg.Name()
	}

	c.seen = typeutil.Map{}
	elems, err := c.collectElements(tp.Constraint())
	if err != nil {
		return fmt.Errorf("type %s: %w", typename.Name(), err)
	}
	if len(elems) == 0 {
		return fmt.Errorf("type %s: constraint %s has no element types", typename.Name(), vdata.Constraint)
	}
	vdata.Elements = elems

	c.viewDataMap[typename.Name()] = vdata
	return nil
}

func (c *Checker) collectElements(ctype types.Type) ([]*ElementData, error) {
	if c.seen.At(ctype) != nil {
		return nil, nil
	}
	c.seen.Set(ctype, true)

	iface, ok := ctype.Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("constraint %v is not an interface", ctype)
	}
	if iface.NumMethods() != 0 {
		return nil, fmt.Errorf("constraint %v must not have methods", ctype)
	}

	var elems []*ElementData
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		var terms []*types.Term
		switch x := iface.EmbeddedType(i).(type) {
		case *types.Union:
			for j := 0; j < x.Len(); j++ {
				terms = append(terms, x.Term(j))
			}
		default:
			terms = append(terms, types.NewTerm(false, x))
		}

		for _, term := range terms {
			if _, ok := term.Type().Underlying().(*types.Interface); ok {
				nested, err := c.collectElements(term.Type())
				if err != nil {
					return nil, err
				}
				elems = append(elems, nested...)
				continue
			}
			if c.seen.At(term.Type()) != nil {
				continue
			}
			c.seen.Set(term.Type(), true)

			edata, err := c.elementData(term)
			if err != nil {
				return nil, err
			}
			elems = append(elems, edata)
		}
	}
	return elems, nil
}

var fixedSizeKinds = map[types.BasicKind]bool{
	types.Int8:   true,
	types.Int16:  true,
	types.Int32:  true,
	types.Uint8:  true,
	types.Uint16: true,
	types.Uint32: true,
}

func (c *Checker) elementData(term *types.Term) (*ElementData, error) {
	basic, ok := term.Type().Underlying().(*types.Basic)
	if !ok || !fixedSizeKinds[basic.Kind()] {
		return nil, fmt.Errorf("element type %v is not a 1, 2 or 4 byte integer", term.Type())
	}
	return &ElementData{
		Name:   types.TypeString(term.Type(), nil),
		Kind:   basic.Name(),
		Tilde:  term.Tilde(),
		Size:   c.sizer.Sizeof(basic),
		Signed: basic.Info()&types.IsUnsigned == 0,
	}, nil
}
