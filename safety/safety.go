//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package safety implements the key-safety and output-escaping boundary
// contracts every handler must apply before indexing untrusted request
// data or emitting a value that might reach a template (spec §6).
package safety

import "strings"

// SafeKey reports whether key is safe to use as a map/property lookup
// key derived from request data: letters, digits, underscore, and dot
// only. On top of that allowlist it rejects the prototype-pollution keys
// ("__proto__", "constructor", "prototype") and any key containing a
// path traversal segment ("..").
func SafeKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.':
		default:
			return false
		}
	}
	switch key {
	case "__proto__", "constructor", "prototype":
		return false
	}
	if strings.Contains(key, "..") {
		return false
	}
	return true
}

// knownEntities lists the entity suffixes (everything after the leading
// '&') that EscapeHTML recognises as already escaped and leaves alone.
// Limiting this to the handful of entities EscapeHTML itself produces
// (plus the common named forms of quote/apostrophe) is what keeps
// EscapeHTML idempotent: a second pass never re-escapes a '&' that is
// already part of a recognised entity (spec §8 "Sanitisation is
// idempotent on strings").
var knownEntities = []string{"amp;", "lt;", "gt;", "quot;", "apos;", "#34;", "#39;"}

// EscapeHTML escapes '<', '>', '&', '"', and '\'' so a value is safe to
// interpolate into HTML output, without double-escaping a '&' that
// already starts a recognised entity. That makes it idempotent:
// EscapeHTML(EscapeHTML(s)) == EscapeHTML(s).
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '&':
			if n := matchEntity(s[i+1:]); n > 0 {
				b.WriteString(s[i : i+1+n])
				i += n
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&#34;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// matchEntity returns the length of a known entity suffix (not counting
// the leading '&', already consumed by the caller) if rest starts with
// one, or 0 if it doesn't.
func matchEntity(rest string) int {
	for _, e := range knownEntities {
		if strings.HasPrefix(rest, e) {
			return len(e)
		}
	}
	return 0
}
