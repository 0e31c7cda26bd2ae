package family

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/cases"
)

// ListKey identifies a fallback list.
type ListKey string

// Well-known fallback lists.
const (
	// ListAttachments holds the families embedded in the document.
	ListAttachments ListKey = "attachments"

	// ListDefault holds the configured default fallback families.
	ListDefault ListKey = "default"
)

// placeholderPrefix names families that have no name of their own.
const placeholderPrefix = "fallback"

// Registry owns every Family and Font of a resolver.
//
// It holds two caches: the name cache of discovered families, and the
// fallback-list cache. Both store IDs into the arena.
//
// Registry is not safe for concurrent use.
type Registry struct {
	families []*Family
	forest   Forest
	names    map[string]ID
	lists    map[ListKey]*Forest
	counter  int
	fold     cases.Caser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]ID),
		lists: make(map[ListKey]*Forest),
		fold:  cases.Fold(),
	}
}

// Key returns the case-insensitive identity of a family name.
func (r *Registry) Key(name string) string {
	return r.fold.String(name)
}

// Family returns the family with the given ID, or nil.
func (r *Registry) Family(id ID) *Family {
	if id < 0 || int(id) >= len(r.families) {
		return nil
	}
	return r.families[id]
}

// Len returns the number of families in the arena.
func (r *Registry) Len() int {
	return len(r.families)
}

// Lookup returns the discovered family of the given name, or nil.
func (r *Registry) Lookup(name string) *Family {
	id, ok := r.names[r.Key(name)]
	if !ok {
		return nil
	}
	return r.families[id]
}

// Register returns the discovered family of the given name, creating it
// if needed. created reports whether a new family was made; registering a
// known name returns the existing family unchanged.
//
// An empty name gets a synthesized placeholder name.
func (r *Registry) Register(name string) (f *Family, created bool) {
	if name != "" {
		if f := r.Lookup(name); f != nil {
			return f, false
		}
	}
	f = r.NewFamily(name)
	r.names[f.name] = f.id
	r.forest.Append(f.id)
	return f, true
}

// NewFamily adds a family to the arena without entering it in the name
// cache. Attachment families and fallback placeholders are made this way.
func (r *Registry) NewFamily(name string) *Family {
	key := r.Key(name)
	if key == "" {
		key = fmt.Sprintf("%s-%04d", placeholderPrefix, r.counter)
		r.counter++
	}
	f := &Family{
		id:    ID(len(r.families)),
		name:  key,
		alias: -1,
	}
	r.families = append(r.families, f)
	return f
}

// Populate makes the empty family f share the variants of src.
// It reports false if f already has variants or src has none.
func (r *Registry) Populate(f, src *Family) bool {
	if f.Len() > 0 || src == nil || src.Len() == 0 || f == src {
		return false
	}
	f.fonts = src.fonts
	f.alias = src.id
	return true
}

// Discovered returns the forest of families in the name cache, in
// discovery order.
func (r *Registry) Discovered() *Forest {
	return &r.forest
}

// List returns a memoized fallback list.
func (r *Registry) List(key ListKey) (*Forest, bool) {
	f, ok := r.lists[key]
	return f, ok
}

// SetList memoizes a fallback list. A list is built at most once: if key
// is already present the stored list is kept and returned.
func (r *Registry) SetList(key ListKey, f *Forest) *Forest {
	if old, ok := r.lists[key]; ok {
		return old
	}
	if f == nil {
		f = NewForest()
	}
	r.lists[key] = f
	return f
}

// Lists returns the memoized list keys in sorted order.
func (r *Registry) Lists() []ListKey {
	keys := make([]ListKey, 0, len(r.lists))
	for k := range r.lists {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Walk iterates the families of a forest in order.
func (r *Registry) Walk(f *Forest) iter.Seq[*Family] {
	return func(yield func(*Family) bool) {
		for _, id := range f.IDs() {
			fam := r.Family(id)
			if fam == nil {
				continue
			}
			if !yield(fam) {
				return
			}
		}
	}
}

// Reset drops every family, font and list.
func (r *Registry) Reset() {
	for i := range r.families {
		r.families[i].fonts = nil
		r.families[i] = nil
	}
	r.families = r.families[:0]
	r.forest = Forest{}
	clear(r.names)
	clear(r.lists)
	r.counter = 0
}

// ScriptList returns the fallback list key for a family name and script.
func ScriptList(name string, script language.Script) ListKey {
	return ListKey(cases.Fold().String(name) + "-" + strings.ToLower(script.String()))
}
