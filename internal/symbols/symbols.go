// Package symbols implements the indexer's memoized, bounded-size caches over
// the semantic oracle: base symbols of an interface or struct and the
// inherited members reachable through embedding. Both are pure functions of
// the oracle's state and are safe to memoize process-wide for the duration of
// one indexing run.
package symbols

import (
	"go/types"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	baseSymbolsCacheSize = 2048
	baseMembersCacheSize = 64
)

// Cache is the Symbols semantic cache: two LRUs process-local to one
// indexing run, never shared across runs.
type Cache struct {
	baseSymbols *lru.Cache[*types.TypeName, []*types.TypeName]
	baseMembers *lru.Cache[baseMembersKey, []types.Object]
}

type baseMembersKey struct {
	symbol *types.TypeName
	name   string
}

// New constructs an empty Cache.
func New() *Cache {
	baseSymbols, err := lru.New[*types.TypeName, []*types.TypeName](baseSymbolsCacheSize)
	if err != nil {
		panic(err)
	}
	baseMembers, err := lru.New[baseMembersKey, []types.Object](baseMembersCacheSize)
	if err != nil {
		panic(err)
	}

	return &Cache{baseSymbols: baseSymbols, baseMembers: baseMembers}
}

// GetBaseSymbols returns the symbols of the named types a struct embeds (by
// value or pointer) or the named interfaces an interface embeds, i.e. Go's
// only form of "extends"/"implements"
// heritage. It returns (nil, false) for type literals (anonymous struct or
// interface types with no *types.TypeName) and for symbols with no bases.
func (c *Cache) GetBaseSymbols(symbol *types.TypeName) ([]*types.TypeName, bool) {
	if symbol == nil {
		return nil, false
	}
	if cached, ok := c.baseSymbols.Get(symbol); ok {
		if len(cached) == 0 {
			return nil, false
		}
		return cached, true
	}

	bases := computeBaseSymbols(symbol)
	c.baseSymbols.Add(symbol, bases)
	if len(bases) == 0 {
		return nil, false
	}
	return bases, true
}

func computeBaseSymbols(symbol *types.TypeName) []*types.TypeName {
	named, ok := symbol.Type().(*types.Named)
	if !ok {
		return nil
	}

	var bases []*types.TypeName

	switch underlying := named.Underlying().(type) {
	case *types.Interface:
		for i := 0; i < underlying.NumEmbeddeds(); i++ {
			if embeddedName, ok := underlying.EmbeddedType(i).(*types.Named); ok {
				bases = append(bases, embeddedName.Obj())
			}
		}

	case *types.Struct:
		for i := 0; i < underlying.NumFields(); i++ {
			field := underlying.Field(i)
			if !field.Embedded() {
				continue
			}
			t := field.Type()
			if ptr, ok := t.(*types.Pointer); ok {
				t = ptr.Elem()
			}
			if namedField, ok := t.(*types.Named); ok {
				bases = append(bases, namedField.Obj())
			}
		}
	}

	return bases
}

// FindBaseMembers transitively walks symbol's bases looking for a member
// named name, returning every match found at any depth. An empty result is
// itself cached (so repeated negative lookups are cheap) but reported to the
// caller as (nil, false).
func (c *Cache) FindBaseMembers(symbol *types.TypeName, name string) ([]types.Object, bool) {
	key := baseMembersKey{symbol: symbol, name: name}
	if cached, ok := c.baseMembers.Get(key); ok {
		if len(cached) == 0 {
			return nil, false
		}
		return cached, true
	}

	var found []types.Object
	seen := map[*types.TypeName]bool{}
	c.walkBaseMembers(symbol, name, seen, &found)

	c.baseMembers.Add(key, found)
	if len(found) == 0 {
		return nil, false
	}
	return found, true
}

func (c *Cache) walkBaseMembers(symbol *types.TypeName, name string, seen map[*types.TypeName]bool, found *[]types.Object) {
	bases, ok := c.GetBaseSymbols(symbol)
	if !ok {
		return
	}

	for _, base := range bases {
		if seen[base] {
			continue
		}
		seen[base] = true

		if named, ok := base.Type().(*types.Named); ok {
			for i := 0; i < named.NumMethods(); i++ {
				if m := named.Method(i); m.Name() == name {
					*found = append(*found, m)
				}
			}
			if iface, ok := named.Underlying().(*types.Interface); ok {
				for i := 0; i < iface.NumMethods(); i++ {
					if m := iface.Method(i); m.Name() == name {
						*found = append(*found, m)
					}
				}
			}
			if st, ok := named.Underlying().(*types.Struct); ok {
				for i := 0; i < st.NumFields(); i++ {
					if f := st.Field(i); f.Name() == name {
						*found = append(*found, f)
					}
				}
			}
		}

		c.walkBaseMembers(base, name, seen, found)
	}
}
