package property

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// ─────────────────────────────────────────────────────────────────────────────
// Resolver
//
// A path is a sequence of segments separated by Config.Separator. Each
// segment is resolved against the value produced by the previous one:
//
//	Resolve("address.countryName", person)
//	Resolve("firstName.length", person)
//	Resolve("tags.0", post)
//
// For every segment the resolver tries, in order:
//
//  1. a key of a map with string keys
//  2. an index into a slice or array
//  3. a zero-argument accessor: Get<Segment>, then <Segment>
//  4. a struct field: <Segment>, then the segment as written, which may be
//     a tag name of a registered type
//  5. a length pseudo-segment on strings, slices, arrays and maps
// ─────────────────────────────────────────────────────────────────────────────

// Resolver resolves property paths. It is safe for concurrent use.
type Resolver struct {
	cfg Config
}

// New returns a Resolver for cfg. Zero-valued fields take their defaults
// from [DefaultConfig].
func New(cfg Config) *Resolver {
	def := DefaultConfig()
	if cfg.Separator == "" {
		cfg.Separator = def.Separator
	}
	if cfg.AccessorPrefixes == nil {
		cfg.AccessorPrefixes = def.AccessorPrefixes
	}
	if cfg.LengthSegments == nil {
		cfg.LengthSegments = def.LengthSegments
	}
	return &Resolver{cfg: cfg}
}

var std = New(DefaultConfig())

// Resolve resolves path against root using the default configuration.
//
//	Resolve("bestFriend.age", mario) // 31
func Resolve(path string, root any) (any, error) { return std.Resolve(path, root) }

// Has reports whether path resolves against root using the default
// configuration.
func Has(path string, root any) bool { return std.Has(path, root) }

// Parse validates path using the default configuration.
func Parse(path string) (Path, error) { return std.Parse(path) }

// Register scans the struct type T, and the struct types it references in
// the same module, so that segments may use the names given by their
// `lambda` or json struct tags. The collections and match packages
// register their element types themselves.
//
//	type Exposure struct {
//	    Insured string `json:"insured_name"`
//	}
//	property.Register[Exposure]()
//	property.Resolve("insured_name", exposure)
func Register[T any]() { member.Prime[T]() }

// MustParse is like [Parse] but panics when path is invalid.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve resolves path against root.
func (r *Resolver) Resolve(path string, root any) (any, error) {
	p, err := r.Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Resolve(root)
}

// Has reports whether path resolves against root without error.
func (r *Resolver) Has(path string, root any) bool {
	_, err := r.Resolve(path, root)
	return err == nil
}

// Parse splits and validates path. The returned Path can be resolved any
// number of times.
func (r *Resolver) Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, r.cfg.Separator)
	exported := make([]string, len(segments))
	caser := cases.Title(language.Und, cases.NoLower)
	for i, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
		exported[i] = caser.String(seg)
	}
	return Path{raw: path, segments: segments, exported: exported, resolver: r}, nil
}

// step resolves a single segment against v.
func (r *Resolver) step(v reflect.Value, seg, name string) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %q on nil interface", ErrNullPath, seg)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %q on nil", ErrNullPath, seg)
	}
	base := v
	for base.Kind() == reflect.Pointer {
		if base.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %q on nil %s", ErrNullPath, seg, v.Type())
		}
		base = base.Elem()
	}

	switch base.Kind() {
	case reflect.Map:
		if kt := base.Type().Key(); kt.Kind() == reflect.String {
			if e := base.MapIndex(reflect.ValueOf(seg).Convert(kt)); e.IsValid() {
				return e, nil
			}
		}
	case reflect.Slice, reflect.Array:
		if i, err := strconv.Atoi(seg); err == nil {
			if i < 0 || i >= base.Len() {
				return reflect.Value{}, fmt.Errorf("%w: index %d out of range [0:%d]", ErrUnresolvedPath, i, base.Len())
			}
			return base.Index(i), nil
		}
	}

	for _, prefix := range r.cfg.AccessorPrefixes {
		ref, ok := member.FindMethod(v.Type(), prefix+name)
		if !ok || ref.Arity() != 0 || ref.Void() {
			continue
		}
		return ref.Invoke(v, nil)
	}

	if base.Kind() == reflect.Struct {
		if ref, ok := member.FindField(base.Type(), name); ok {
			return ref.Invoke(base, nil)
		}
		if ref, ok := member.FindField(base.Type(), seg); ok {
			return ref.Invoke(base, nil)
		}
	}

	if r.isLength(seg) {
		switch base.Kind() {
		case reflect.String:
			return reflect.ValueOf(utf8.RuneCountInString(base.String())), nil
		case reflect.Slice, reflect.Array, reflect.Map:
			return reflect.ValueOf(base.Len()), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %s has no property %q", ErrUnresolvedPath, v.Type(), seg)
}

func (r *Resolver) isLength(seg string) bool {
	for _, l := range r.cfg.LengthSegments {
		if l == seg {
			return true
		}
	}
	return false
}

// suggest returns the known name closest to seg on v, if any.
func suggest(v reflect.Value, seg string) string {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return member.Closest(keys, seg)
	}
	return member.Suggest(v.Type(), seg)
}

// ─────────────────────────────────────────────────────────────────────────────
// Path
// ─────────────────────────────────────────────────────────────────────────────

// Path is a parsed property path bound to the [Resolver] that parsed it.
// The zero Path is invalid.
type Path struct {
	raw      string
	segments []string
	exported []string
	resolver *Resolver
}

// Resolve walks p against root and returns the final value.
func (p Path) Resolve(root any) (any, error) {
	if p.resolver == nil {
		return nil, fmt.Errorf("%w: zero Path", ErrInvalidPath)
	}
	v := reflect.ValueOf(root)
	for i, seg := range p.segments {
		next, err := p.resolver.step(v, seg, p.exported[i])
		if err != nil {
			pe := &PathError{Path: p.raw, Segment: seg, Err: err}
			if errors.Is(err, ErrUnresolvedPath) {
				pe.Suggestion = suggest(v, seg)
			}
			return nil, pe
		}
		v = next
	}
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// String returns the path as it was parsed.
func (p Path) String() string { return p.raw }
