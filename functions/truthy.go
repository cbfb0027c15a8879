//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package functions

import "reflect"

// Truthy reports whether v counts as truthy for ConditionalHandler's
// "when" result and AnswerLocalHandler's "dependent" result (spec §4.6):
// nil, false, zero numbers, and the empty string are falsy; everything
// else, including empty slices and maps, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case float32:
		return x != 0
	default:
		switch rv := reflect.ValueOf(v); rv.Kind() {
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint, reflect.Uint8,
			reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return !rv.IsZero()
		}
		return true
	}
}
