package internal

// Validity checks are expensive enough to matter in tight loops, so they can be
// switched off. A StrictMode is decided once per build or environment and
// handed to constructors; queries re-validate under DefaultStrictMode.
type StrictMode int

const (
	// Lenient trusts the caller and performs no checks.
	Lenient StrictMode = iota
	// Strict panics with a GeometryError when an invariant does not hold.
	Strict
)

// DefaultStrictMode is Strict, unless the module is built with the "release"
// build tag.
const DefaultStrictMode = defaultStrictMode

func (m StrictMode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	}
	return "unknown"
}

// check runs validity only in strict mode, so lenient builds never pay for
// constructing the error.
func (m StrictMode) check(shape string, validity func() error) {
	if m != Strict {
		return
	}
	if err := validity(); err != nil {
		invalid(shape, err)
	}
}

// Re-validate a shape before querying it.
func assertValid(shape string, validity func() error) {
	DefaultStrictMode.check(shape, validity)
}
