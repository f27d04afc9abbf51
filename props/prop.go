package props

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrTypeMismatch indicates a comparison between Props of incompatible variants.
var ErrTypeMismatch = errors.New("props: property type mismatch")

// Type is the variant tag of a Prop.
type Type uint8

// Variant tags. TypeNone is the zero value and marks an absent Prop.
const (
	TypeNone Type = iota
	TypeStr
	TypeI64
	TypeU64
	TypeF64
	TypeBool
	TypeTime
	TypeList
	TypeMap
)

// String returns the tag name, e.g. "i64".
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeStr:
		return "str"
	case TypeI64:
		return "i64"
	case TypeU64:
		return "u64"
	case TypeF64:
		return "f64"
	case TypeBool:
		return "bool"
	case TypeTime:
		return "time"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	}
	return "unknown"
}

// Prop is a single-tagged property value.
//
// The zero Prop has TypeNone and reports false from IsSet; queries for
// missing properties return it rather than an error.
type Prop struct {
	typ  Type
	bits uint64 // i64 / u64 / f64 / bool / time payload
	str  string
	list []Prop
	m    map[string]Prop
}

// Str builds a string Prop.
func Str(v string) Prop { return Prop{typ: TypeStr, str: v} }

// I64 builds a signed-integer Prop.
func I64(v int64) Prop { return Prop{typ: TypeI64, bits: uint64(v)} }

// U64 builds an unsigned-integer Prop.
func U64(v uint64) Prop { return Prop{typ: TypeU64, bits: v} }

// F64 builds a float Prop.
func F64(v float64) Prop { return Prop{typ: TypeF64, bits: math.Float64bits(v)} }

// Bool builds a boolean Prop.
func Bool(v bool) Prop {
	var b uint64
	if v {
		b = 1
	}
	return Prop{typ: TypeBool, bits: b}
}

// Time builds a timestamp Prop (signed 64-bit epoch value).
func Time(ts int64) Prop { return Prop{typ: TypeTime, bits: uint64(ts)} }

// List builds a list Prop. The slice is not copied.
func List(vs ...Prop) Prop { return Prop{typ: TypeList, list: vs} }

// Map builds a map Prop. The map is not copied.
func Map(m map[string]Prop) Prop { return Prop{typ: TypeMap, m: m} }

// Typ returns the variant tag.
func (p Prop) Typ() Type { return p.typ }

// IsSet reports whether p holds a value (TypeNone means absent).
func (p Prop) IsSet() bool { return p.typ != TypeNone }

// AsStr returns the string payload; ok is false on a different variant.
func (p Prop) AsStr() (string, bool) { return p.str, p.typ == TypeStr }

// AsI64 returns the signed-integer payload.
func (p Prop) AsI64() (int64, bool) { return int64(p.bits), p.typ == TypeI64 }

// AsU64 returns the unsigned-integer payload.
func (p Prop) AsU64() (uint64, bool) { return p.bits, p.typ == TypeU64 }

// AsF64 returns the float payload.
func (p Prop) AsF64() (float64, bool) { return math.Float64frombits(p.bits), p.typ == TypeF64 }

// AsBool returns the boolean payload.
func (p Prop) AsBool() (bool, bool) { return p.bits != 0, p.typ == TypeBool }

// AsTime returns the timestamp payload.
func (p Prop) AsTime() (int64, bool) { return int64(p.bits), p.typ == TypeTime }

// AsList returns the list payload. The slice is shared, not copied.
func (p Prop) AsList() ([]Prop, bool) { return p.list, p.typ == TypeList }

// AsMap returns the map payload. The map is shared, not copied.
func (p Prop) AsMap() (map[string]Prop, bool) { return p.m, p.typ == TypeMap }

// Equal reports deep equality of value and variant.
// Props of different variants are unequal, never an error.
func (p Prop) Equal(o Prop) bool {
	if p.typ != o.typ {
		return false
	}
	switch p.typ {
	case TypeNone:
		return true
	case TypeStr:
		return p.str == o.str
	case TypeList:
		if len(p.list) != len(o.list) {
			return false
		}
		for i := range p.list {
			if !p.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(p.m) != len(o.m) {
			return false
		}
		for k, v := range p.m {
			ov, ok := o.m[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return p.bits == o.bits
	}
}

// Compare orders two Props of the same variant: -1, 0, +1.
// Returns ErrTypeMismatch when the variants differ or are unordered
// (list, map, none).
func (p Prop) Compare(o Prop) (int, error) {
	if p.typ != o.typ {
		return 0, fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, p.typ, o.typ)
	}
	switch p.typ {
	case TypeStr:
		return strings.Compare(p.str, o.str), nil
	case TypeI64, TypeTime:
		return cmpOrdered(int64(p.bits), int64(o.bits)), nil
	case TypeU64:
		return cmpOrdered(p.bits, o.bits), nil
	case TypeF64:
		a, _ := p.AsF64()
		b, _ := o.AsF64()
		return cmpOrdered(a, b), nil
	case TypeBool:
		return cmpOrdered(p.bits, o.bits), nil
	default:
		return 0, fmt.Errorf("%w: %s is not ordered", ErrTypeMismatch, p.typ)
	}
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the value for diagnostics.
func (p Prop) String() string {
	switch p.typ {
	case TypeNone:
		return "<unset>"
	case TypeStr:
		return p.str
	case TypeI64, TypeTime:
		return strconv.FormatInt(int64(p.bits), 10)
	case TypeU64:
		return strconv.FormatUint(p.bits, 10)
	case TypeF64:
		v, _ := p.AsF64()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case TypeBool:
		v, _ := p.AsBool()
		return strconv.FormatBool(v)
	case TypeList:
		parts := make([]string, len(p.list))
		for i, v := range p.list {
			parts[i] = v.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeMap:
		parts := make([]string, 0, len(p.m))
		for k, v := range p.m {
			parts = append(parts, k+": "+v.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "<unknown>"
}
