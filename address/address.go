// SPDX-License-Identifier: MIT
// Package: credmpg/address
//
// address.go — the Address value type: construction, composition,
// decomposition, prefix-testing, equality, and total ordering.
//
// Implementation notes (lvlath-style staging):
//   - Stage 1 (Validate): every constructor rejects empty parts and parts
//     carrying the reserved separator byte, per spec §4.1.
//   - Stage 2 (Store): parts are copied into an owned slice so the caller's
//     backing array can be mutated freely afterward.
//   - Stage 3 (Query): Parts()/HasPrefix/Equal/Compare are pure, O(n) or
//     O(n log n) (for Compare, effectively O(n) since only one linear scan
//     is needed) read-only operations over the owned slice.
package address

import (
	"strings"
)

// Address is an opaque, ordered sequence of string parts tagged with a
// Kind. The zero value is not a valid Address; use New or one of the
// New* helpers.
type Address struct {
	kind  Kind
	parts []string
}

// New constructs an Address of the given Kind from parts. Parts must be
// non-empty and must not contain the reserved separator byte.
//
// Complexity: O(n) where n = total length of parts.
func New(kind Kind, parts ...string) (Address, error) {
	if len(parts) == 0 {
		return Address{}, ErrEmptyAddress
	}

	owned := make([]string, len(parts))
	for i, p := range parts {
		if p == "" {
			return Address{}, ErrEmptyPart
		}
		if strings.ContainsRune(p, separator) {
			return Address{}, ErrPartContainsSeparator
		}
		owned[i] = p
	}

	return Address{kind: kind, parts: owned}, nil
}

// NewNode constructs a KindNode Address.
func NewNode(parts ...string) (Address, error) {
	return New(KindNode, parts...)
}

// NewEdge constructs a KindEdge Address.
func NewEdge(parts ...string) (Address, error) {
	return New(KindEdge, parts...)
}

// MustNew is New but panics on error; reserved for package-level constant
// addresses built from literal, known-good parts (see mpg's reserved
// prefixes), following the same "panic on programmer error, return error
// on data error" split lvlath uses between option constructors and
// runtime validation.
func MustNew(kind Kind, parts ...string) Address {
	a, err := New(kind, parts...)
	if err != nil {
		panic("address: MustNew: " + err.Error())
	}
	return a
}

// Kind returns the address's namespace tag.
func (a Address) Kind() Kind {
	return a.kind
}

// IsZero reports whether a is the unconstructed zero value.
func (a Address) IsZero() bool {
	return len(a.parts) == 0
}

// Parts returns a defensive copy of the address's part sequence.
//
// Complexity: O(n).
func (a Address) Parts() []string {
	out := make([]string, len(a.parts))
	copy(out, a.parts)
	return out
}

// Append returns a new Address of the same Kind with extra parts appended.
// The receiver is left unmodified (Address values are immutable).
//
// Complexity: O(n+m).
func (a Address) Append(parts ...string) (Address, error) {
	combined := make([]string, 0, len(a.parts)+len(parts))
	combined = append(combined, a.parts...)
	combined = append(combined, parts...)
	return New(a.kind, combined...)
}

// HasPrefix reports whether a begins with the parts of prefix, requiring
// both addresses share the same Kind. A prefix longer than a never matches.
//
// Complexity: O(k) where k = len(prefix.parts).
func (a Address) HasPrefix(prefix Address) bool {
	if a.kind != prefix.kind {
		return false
	}
	if len(prefix.parts) > len(a.parts) {
		return false
	}
	for i, p := range prefix.parts {
		if a.parts[i] != p {
			return false
		}
	}
	return true
}

// Equal reports whether a and other have the same Kind and identical parts.
//
// Complexity: O(n).
func (a Address) Equal(other Address) bool {
	if a.kind != other.kind || len(a.parts) != len(other.parts) {
		return false
	}
	for i := range a.parts {
		if a.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// Compare imposes a total order over all Address values, first by Kind,
// then lexicographically over parts, then by part-count (a strict prefix
// sorts before its extension). It is the ordering the Chain Emitter uses
// to build a canonical node sequence (spec §4.6).
//
// Complexity: O(n).
func (a Address) Compare(other Address) int {
	if a.kind != other.kind {
		if a.kind < other.kind {
			return -1
		}
		return 1
	}

	n := len(a.parts)
	if len(other.parts) < n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		if a.parts[i] != other.parts[i] {
			if a.parts[i] < other.parts[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.parts) < len(other.parts):
		return -1
	case len(a.parts) > len(other.parts):
		return 1
	default:
		return 0
	}
}

// String returns the canonical diagnostic form: "<kind>:" followed by
// parts joined on the internal separator, with any escape-rune-prefixed
// occurrences of the separator or escape rune itself escaped. This form
// exists solely for logs and error messages; it is never parsed back.
//
// Complexity: O(n).
func (a Address) String() string {
	var b strings.Builder
	b.WriteString(a.kind.String())
	b.WriteByte(':')
	for i, p := range a.parts {
		if i > 0 {
			b.WriteRune(separator)
		}
		b.WriteString(escapePart(p))
	}
	return b.String()
}

func escapePart(p string) string {
	if !strings.ContainsRune(p, escapeRune) && !strings.ContainsRune(p, separator) {
		return p
	}
	var b strings.Builder
	for _, r := range p {
		if r == escapeRune || r == separator {
			b.WriteRune(escapeRune)
		}
		b.WriteRune(r)
	}
	return b.String()
}
