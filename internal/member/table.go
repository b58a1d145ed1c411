package member

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

// Tag is the struct tag that gives a field an alternative name for
// [Field] lookups and property paths. A field without it falls back to the
// name in its json tag.
//
//	type Exposure struct {
//	    Country string `lambda:"countryName"`
//	    Insured string `json:"insured_name"`
//	}
const Tag = "lambda"

func init() {
	sentinel.Tag(Tag)
}

type table struct {
	methods map[string]Ref
	fields  map[string]Ref
	tagged  map[string]Ref // tag name -> field
	names   []string

	gen     uint64
	settled bool // no later Prime can change the table
}

// registry is the process-wide, goroutine-safe table cache keyed by type.
// gen counts the struct types primed so far; unsettled tables built under
// an older generation are rebuilt on their next lookup.
var registry struct {
	mu      sync.RWMutex
	tables  map[reflect.Type]*table
	scanned map[reflect.Type]sentinel.Metadata
	gen     uint64
}

func init() {
	registry.tables = make(map[reflect.Type]*table)
	registry.scanned = make(map[reflect.Type]sentinel.Metadata)
}

// Prime scans T, and the struct types it references within the same
// module, with sentinel so their tagged field names are known to later
// lookups. It is a no-op for anything but structs and pointers to structs.
func Prime[T any]() {
	st := structOf(reflect.TypeFor[T]())
	if st.Kind() != reflect.Struct {
		return
	}
	registry.mu.RLock()
	_, done := registry.scanned[st]
	registry.mu.RUnlock()
	if done {
		return
	}

	md, err := sentinel.TryScan[T]()
	if err != nil {
		return
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, done := registry.scanned[st]; !done {
		registry.scanned[st] = md
		registry.gen++
	}
}

func lookup(t reflect.Type) *table {
	registry.mu.RLock()
	tb, ok := registry.tables[t]
	gen := registry.gen
	registry.mu.RUnlock()
	if ok && tb.current(gen) {
		return tb
	}

	tb = build(t, gen)

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if existing, ok := registry.tables[t]; ok && existing.current(registry.gen) {
		return existing
	}
	registry.tables[t] = tb
	return tb
}

func (tb *table) current(gen uint64) bool { return tb.settled || tb.gen == gen }

func build(t reflect.Type, gen uint64) *table {
	tb := &table{
		methods: make(map[string]Ref),
		fields:  make(map[string]Ref),
		tagged:  make(map[string]Ref),
		gen:     gen,
		settled: true,
	}

	addMethods(tb, t, t, false)
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		addMethods(tb, t, reflect.PointerTo(t), true)
	}

	if st := structOf(t); st.Kind() == reflect.Struct {
		tb.settled = addFields(tb, t, st)
	}

	for name := range tb.methods {
		tb.names = append(tb.names, name)
	}
	for name := range tb.fields {
		if _, dup := tb.methods[name]; !dup {
			tb.names = append(tb.names, name)
		}
	}
	for name := range tb.tagged {
		tb.names = append(tb.names, name)
	}
	sort.Strings(tb.names)
	return tb
}

func addMethods(tb *table, owner, mt reflect.Type, pointer bool) {
	// Concrete method types carry the receiver as their first parameter.
	offset := 1
	if mt.Kind() == reflect.Interface {
		offset = 0
	}
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		if _, seen := tb.methods[m.Name]; seen {
			continue
		}
		out, errs, ok := results(m.Type)
		if !ok {
			continue
		}
		in := make([]reflect.Type, 0, m.Type.NumIn()-offset)
		for j := offset; j < m.Type.NumIn(); j++ {
			in = append(in, m.Type.In(j))
		}
		tb.methods[m.Name] = Ref{
			Owner:    owner,
			Name:     m.Name,
			Kind:     KindMethod,
			Index:    []int{i},
			Pointer:  pointer,
			In:       in,
			Variadic: m.Type.IsVariadic(),
			Out:      out,
			Errors:   errs,
		}
	}
}

// addFields adds every visible field of st, promoted and unexported ones
// included, then the tag names sentinel reports for its exported fields.
// It reports whether sentinel metadata was available.
func addFields(tb *table, owner, st reflect.Type) bool {
	for _, sf := range reflect.VisibleFields(st) {
		if _, seen := tb.fields[sf.Name]; seen {
			continue
		}
		tb.fields[sf.Name] = Ref{
			Owner: owner,
			Name:  sf.Name,
			Kind:  KindField,
			Index: sf.Index,
			Out:   sf.Type,
		}
	}

	md, ok := metadata(st)
	if !ok {
		return false
	}
	for _, f := range md.Fields {
		alias := tagName(f.Tags)
		if alias == "" || alias == f.Name {
			continue
		}
		if _, taken := tb.fields[alias]; taken {
			continue
		}
		if ref, ok := tb.fields[f.Name]; ok {
			tb.tagged[alias] = ref
		}
	}
	return true
}

// metadata returns the sentinel description of st: from Prime when st was
// primed itself, otherwise from the sentinel cache, which holds the types
// reached while scanning a primed root under their bare names.
func metadata(st reflect.Type) (sentinel.Metadata, bool) {
	registry.mu.RLock()
	md, ok := registry.scanned[st]
	registry.mu.RUnlock()
	if ok {
		return md, true
	}
	if st.Name() == "" {
		return sentinel.Metadata{}, false
	}
	md, ok = sentinel.Lookup(st.Name())
	if !ok || md.TypeName != st.Name() || md.PackageName != st.PkgPath() {
		return sentinel.Metadata{}, false
	}
	return md, true
}

func tagName(tags map[string]string) string {
	for _, key := range []string{Tag, "json"} {
		name, _, _ := strings.Cut(tags[key], ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}
