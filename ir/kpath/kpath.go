package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is a field path.  The nil *KPath is the root (empty) path.
type KPath struct {
	Field *string // Object field name
	Next  *KPath  // Next segment in path (nil for leaf)
}

// Field creates a path from its keys.
func Field(keys ...string) *KPath {
	var res *KPath
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		res = &KPath{Field: &key, Next: res}
	}
	return res
}

// Append returns a copy of p extended by key.
func (p *KPath) Append(key string) *KPath {
	return Field(append(p.Segments(), key)...)
}

// Segments returns the keys of p in order.
func (p *KPath) Segments() []string {
	var res []string
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			res = append(res, *x.Field)
		}
	}
	return res
}

// Compare compares paths segment by segment.  A path sorts before
// its extensions.
func (p *KPath) Compare(q *KPath) int {
	a, b := p, q
	for a != nil && b != nil {
		if c := strings.Compare(a.key(), b.key()); c != 0 {
			return c
		}
		a, b = a.Next, b.Next
	}
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

func (p *KPath) Equal(q *KPath) bool {
	return p.Compare(q) == 0
}

func (p *KPath) key() string {
	if p.Field == nil {
		return ""
	}
	return *p.Field
}

// String returns the path representation.
// Example:
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b"}} → "a.b"
//	KPath{Field: &"a b"} → "'a b'"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x != p {
			buf.WriteByte('.')
		}
		buf.WriteString(x.segmentString())
	}
	return buf.String()
}

func (p *KPath) segmentString() string {
	if p == nil || p.Field == nil {
		return ""
	}
	field := *p.Field
	if quoteField(field) {
		return quote(field)
	}
	return field
}

// Parse parses a field path.  The empty string is the root path
// and parses as nil.
//
// Examples:
//   - "a.b.c" → 3 segments
//   - "'a.b'.c" → 2 segments, "a.b" and "c"
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	var keys []string
	rest := kpath
	for {
		key, tail, err := parseField(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
		}
		keys = append(keys, key)
		if tail == "" {
			break
		}
		if tail[0] != '.' || len(tail) == 1 {
			return nil, fmt.Errorf("%w: %q: expected '.' <field> at %q", ErrSyntax, kpath, tail)
		}
		rest = tail[1:]
	}
	return Field(keys...), nil
}

func parseField(s string) (string, string, error) {
	if s == "" {
		return "", "", errors.New("empty field")
	}
	if s[0] != '\'' {
		i := strings.IndexByte(s, '.')
		if i == -1 {
			i = len(s)
		}
		if i == 0 {
			return "", "", errors.New("empty field")
		}
		field := s[:i]
		if strings.ContainsAny(field, "' ") {
			return "", "", fmt.Errorf("field %q must be quoted", field)
		}
		return field, s[i:], nil
	}
	buf := bytes.NewBuffer(nil)
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 == len(s) {
				return "", "", errors.New("unterminated escape")
			}
			i++
			buf.WriteByte(s[i])
		case '\'':
			return buf.String(), s[i+1:], nil
		default:
			buf.WriteByte(c)
		}
	}
	return "", "", errors.New("unterminated quote")
}

func quoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, ".' \\\t\n")
}

func quote(f string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(f); i++ {
		if f[i] == '\'' || f[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(f[i])
	}
	b.WriteByte('\'')
	return b.String()
}
