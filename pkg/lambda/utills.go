package lambda

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// RequireNonNil panics with an error wrapping ErrNilFunction when fn is nil.
// Builders call it before capturing fn so that a missing delegate is reported
// at construction rather than on the first call.
func RequireNonNil(fn any, name string) {
	if IsNil(fn) {
		panic(fmt.Errorf("%w: %s", ErrNilFunction, name))
	}
}
