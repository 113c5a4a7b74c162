package generator

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// TypeEntity describes one kind the catalogue is expanded over: the
// identifier fragment used in alias names, the Go spelling of the type and
// the type itself. Two entities are the same kind when their types are
// identical, whatever their names.
type TypeEntity struct {
	Name      string
	GoName    string
	Type      reflect.Type
	primitive bool
}

func NewTypeEntity(name, goName string, t reflect.Type) TypeEntity {
	return TypeEntity{
		Name:      name,
		GoName:    goName,
		Type:      t,
		primitive: isPrimitive(t),
	}
}

// Primitive reports whether the type is a boolean or numeric basic type.
// Strings are not primitive.
func (e TypeEntity) Primitive() bool {
	return e.primitive
}

func (e TypeEntity) Equal(other TypeEntity) bool {
	return e.Type == other.Type
}

// Key is a stable fingerprint of the type identity.
func (e TypeEntity) Key() uint64 {
	if e.Type == nil {
		return 0
	}
	return xxhash.Sum64String(e.Type.PkgPath() + "." + e.Type.String())
}

func (e TypeEntity) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, e.GoName)
}

func isPrimitive(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

var knownTypes = map[string]reflect.Type{
	"bool":       reflect.TypeOf(false),
	"byte":       reflect.TypeOf(byte(0)),
	"rune":       reflect.TypeOf(rune(0)),
	"int":        reflect.TypeOf(int(0)),
	"int8":       reflect.TypeOf(int8(0)),
	"int16":      reflect.TypeOf(int16(0)),
	"int32":      reflect.TypeOf(int32(0)),
	"int64":      reflect.TypeOf(int64(0)),
	"uint":       reflect.TypeOf(uint(0)),
	"uint8":      reflect.TypeOf(uint8(0)),
	"uint16":     reflect.TypeOf(uint16(0)),
	"uint32":     reflect.TypeOf(uint32(0)),
	"uint64":     reflect.TypeOf(uint64(0)),
	"uintptr":    reflect.TypeOf(uintptr(0)),
	"float32":    reflect.TypeOf(float32(0)),
	"float64":    reflect.TypeOf(float64(0)),
	"complex64":  reflect.TypeOf(complex64(0)),
	"complex128": reflect.TypeOf(complex128(0)),
	"string":     reflect.TypeOf(""),
}

// LookupType resolves a predeclared Go type name.
func LookupType(goName string) (reflect.Type, bool) {
	t, ok := knownTypes[goName]
	return t, ok
}
