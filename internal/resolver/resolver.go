// Package resolver implements the four symbol-resolution strategies: given a
// raw *types.Object (and, for a transient access, the selector expression
// that produced it), decide which symboldata.SymbolData variant the object
// needs and gather the cross-reference data the variant's constructor
// requires.
package resolver

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"github.com/sourcegraph/lsif-index/internal/oracle"
	"github.com/sourcegraph/lsif-index/internal/symboldata"
	"github.com/sourcegraph/lsif-index/internal/symbols"
)

// Kind identifies which of the four closed SymbolData variants a Resolution
// calls for.
type Kind int

const (
	KindStandard Kind = iota
	KindTypeAlias
	KindMethod
	KindTransient
)

// Resolution is the resolver's answer for one symbol: which variant to
// build, and the cross-reference data that variant's constructor needs.
// The indexer (Indexer.buildSymbolData) turns a Resolution into an actual
// symboldata.SymbolData, since it holds the Context and Emitter.
type Resolution struct {
	Kind   Kind
	ID     symboldata.Id
	Object types.Object

	// TypeAlias fields.
	Target   types.Object
	TargetID symboldata.Id
	Rename   bool

	// Method fields.
	Bases   []types.Object
	BaseIDs []symboldata.Id

	// Transient fields.
	Elements   []types.Object
	ElementIDs []symboldata.Id
	Location   ast.Node
}

// ID computes the stable cross-reference id for a types.Object; every
// resolver decision and every SymbolData variant is keyed by this string.
func ID(obj types.Object) symboldata.Id {
	return symboldata.Id(oracle.CacheKey(obj.Pkg(), obj))
}

// Resolve selects the Standard, TypeAlias, or Method strategy for obj.
// Transient resolution requires the selector expression the access came
// through and goes through ResolveTransient instead.
func Resolve(cache *symbols.Cache, obj types.Object) *Resolution {
	if target, rename, ok := aliasTarget(obj); ok {
		return &Resolution{
			Kind:     KindTypeAlias,
			ID:       ID(obj),
			Object:   obj,
			Target:   target,
			TargetID: ID(target),
			Rename:   rename,
		}
	}

	if fn, ok := obj.(*types.Func); ok {
		if recv := fn.Type().(*types.Signature).Recv(); recv != nil {
			return resolveMethod(cache, fn, recv)
		}
	}

	return &Resolution{
		Kind:   KindStandard,
		ID:     ID(obj),
		Object: obj,
	}
}

// aliasTarget reports whether obj is a Go type alias (type A = B) and, if
// so, the *types.TypeName it resolves to and whether the alias binds a name
// different from the target's own — the Go-domain analogs of TypeScript's
// "export { x as y }" rename and plain type alias.
func aliasTarget(obj types.Object) (types.Object, bool, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok || !tn.IsAlias() {
		return nil, false, false
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, false, false
	}

	target := named.Obj()
	return target, target.Name() != tn.Name(), true
}

func resolveMethod(cache *symbols.Cache, fn *types.Func, recv *types.Var) *Resolution {
	receiverType := recv.Type()
	if ptr, ok := receiverType.(*types.Pointer); ok {
		receiverType = ptr.Elem()
	}
	named, ok := receiverType.(*types.Named)
	if !ok {
		return &Resolution{Kind: KindMethod, ID: ID(fn), Object: fn}
	}

	members, found := cache.FindBaseMembers(named.Obj(), fn.Name())
	var bases []types.Object
	var baseIDs []symboldata.Id
	if found {
		for _, m := range members {
			if baseFn, ok := m.(*types.Func); ok {
				bases = append(bases, baseFn)
				baseIDs = append(baseIDs, ID(baseFn))
			}
		}
	}

	return &Resolution{
		Kind:    KindMethod,
		ID:      ID(fn),
		Object:  fn,
		Bases:   bases,
		BaseIDs: baseIDs,
	}
}

// ResolveTransient detects the Go analog of a TypeScript transient
// union/intersection access: a selector expression whose receiver's static
// type is a type parameter whose constraint embeds a union of terms. Every
// named term that declares the selected member contributes it as an element;
// terms that do not declare it are skipped. It returns (nil, false) when sel
// does not have that shape or no term declares the member, in which case the caller should fall back to whatever
// concrete-type resolution applies to the selector's resolved object.
func ResolveTransient(info *types.Info, sel *ast.SelectorExpr, location ast.Node) (*Resolution, bool) {
	xType := info.TypeOf(sel.X)
	if xType == nil {
		return nil, false
	}

	tparam, ok := xType.(*types.TypeParam)
	if !ok {
		return nil, false
	}

	iface, ok := tparam.Constraint().Underlying().(*types.Interface)
	if !ok {
		return nil, false
	}

	var union *types.Union
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		if u, ok := iface.EmbeddedType(i).(*types.Union); ok {
			union = u
			break
		}
	}
	if union == nil {
		return nil, false
	}

	var elements []types.Object
	var elementIDs []symboldata.Id
	name := sel.Sel.Name
	for i := 0; i < union.Len(); i++ {
		term := union.Term(i)
		named, ok := term.Type().(*types.Named)
		if !ok {
			continue
		}
		if obj, _, _ := types.LookupFieldOrMethod(named, true, named.Obj().Pkg(), name); obj != nil {
			elements = append(elements, obj)
			elementIDs = append(elementIDs, ID(obj))
		}
	}

	if len(elementIDs) == 0 {
		return nil, false
	}

	return &Resolution{
		Kind:       KindTransient,
		ID:         transientID(sel),
		Elements:   elements,
		ElementIDs: elementIDs,
		Location:   location,
	}, true
}

// transientID mints a synthetic, access-site-scoped id: a transient symbol
// has no persistent identity, so its id is derived from the one location it
// is ever seen at rather than from any declaration.
func transientID(sel *ast.SelectorExpr) symboldata.Id {
	return symboldata.Id("transient:" + sel.Sel.Name + "@" + posKey(sel.Pos()))
}

func posKey(pos token.Pos) string {
	return strconv.Itoa(int(pos))
}

