package property

// Config controls how a [Resolver] splits and resolves paths.
type Config struct {
	// Separator splits a path into segments. Defaults to ".".
	Separator string

	// AccessorPrefixes are tried, in order, in front of the capitalised
	// segment when looking for a zero-argument accessor method.
	// The empty prefix matches Go-style getters ("Name" for "name").
	// Defaults to ["Get", ""].
	AccessorPrefixes []string

	// LengthSegments name the pseudo-segments that resolve to the length of
	// a string (in runes), slice, array or map.
	// Defaults to ["length", "len"].
	LengthSegments []string
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Separator:        ".",
		AccessorPrefixes: []string{"Get", ""},
		LengthSegments:   []string{"length", "len"},
	}
}
