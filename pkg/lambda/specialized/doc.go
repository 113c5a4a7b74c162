// Package specialized names the primitive specializations of the fn and
// throwing callables, for example IntPredicate, BiIntPredicate,
// IntToInt64Function or ObjIntConsumer[T]. Every name is a type alias, so a
// specialization is interchangeable with the generic type it stands for.
//
// The aliases are generated from the default catalogue.
package specialized

//go:generate go run ../../../cmd/lambdagen --out aliases_gen.go
