// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// comparableEnum is an [Enum] usable as a map key.
type comparableEnum interface {
	comparable
	Enum
}

// String returns the string representation of the given
// enum value with the given map.
func String[T comparableEnum](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// BitFlagString returns the string representation of the given bit flag value
// with the given values available.
func BitFlagString[T BitFlag](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. It also checks for the string
// in lowercase, which is used for enums that accept lowercase input.
func SetStringLower[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringOr sets the given bit flag value from its string representation
// while preserving any bit flags already set. It takes the map from enum
// names to values and the name of the enum type, which is used for the
// error message. Flags are separated by "|".
func SetStringOr[T BitFlagSetter, S BitFlag](i T, s string, valueMap map[string]S, typeName string) error {
	flgs := strings.Split(s, "|")
	for _, flg := range flgs {
		flg = strings.TrimSpace(flg)
		if flg == "" {
			continue
		}
		if val, ok := valueMap[flg]; ok {
			i.SetFlag(true, val)
		} else if val, ok := valueMap[strings.ToLower(flg)]; ok {
			i.SetFlag(true, val)
		} else {
			return fmt.Errorf("%q is not a valid value for type %s", flg, typeName)
		}
	}
	return nil
}

// Desc returns the description of the given enum value.
func Desc[T comparableEnum](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum]s.
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// HasFlag returns whether this bit flag value has the given bit flag set.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in these flags to the given value.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << v.Int64()
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
		atomic.StoreInt64(i, in)
	} else {
		in &^= mask
		atomic.StoreInt64(i, in)
	}
}

// UnmarshalText loads the enum from the given text.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %s: %w", typeName, err)
	}
	return nil
}
