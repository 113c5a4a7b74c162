package generator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// shape is one alias pattern. {N}/{K} stand for the kind's name and Go type,
// {M}/{J} for the second kind of a conversion.
type shape struct {
	name   string
	params string
	target string
}

var kindShapes = []shape{
	{name: "{N}Supplier", target: "fn.Func0[{K}]"},
	{name: "{N}Function", params: "[R any]", target: "fn.Func1[{K}, R]"},
	{name: "To{N}Function", params: "[T any]", target: "fn.Func1[T, {K}]"},
	{name: "Bi{N}Function", params: "[R any]", target: "fn.Func2[{K}, {K}, R]"},
	{name: "Obj{N}Function", params: "[T, R any]", target: "fn.Func2[T, {K}, R]"},
	{name: "Tri{N}Function", params: "[R any]", target: "fn.Func3[{K}, {K}, {K}, R]"},
	{name: "{N}UnaryOperator", target: "fn.Func1[{K}, {K}]"},
	{name: "{N}BinaryOperator", target: "fn.Func2[{K}, {K}, {K}]"},
	{name: "{N}TernaryOperator", target: "fn.Func3[{K}, {K}, {K}, {K}]"},
	{name: "{N}Predicate", target: "fn.Predicate1[{K}]"},
	{name: "Bi{N}Predicate", target: "fn.Predicate2[{K}, {K}]"},
	{name: "Obj{N}Predicate", params: "[T any]", target: "fn.Predicate2[T, {K}]"},
	{name: "Tri{N}Predicate", target: "fn.Predicate3[{K}, {K}, {K}]"},
	{name: "{N}Consumer", target: "fn.Consumer1[{K}]"},
	{name: "Bi{N}Consumer", target: "fn.Consumer2[{K}, {K}]"},
	{name: "Obj{N}Consumer", params: "[T any]", target: "fn.Consumer2[T, {K}]"},
	{name: "ObjBi{N}Consumer", params: "[T any]", target: "fn.Consumer3[T, {K}, {K}]"},
	{name: "Tri{N}Consumer", target: "fn.Consumer3[{K}, {K}, {K}]"},
	{name: "Throwing{N}Supplier", target: "throwing.Func0[{K}]"},
	{name: "Throwing{N}Function", params: "[R any]", target: "throwing.Func1[{K}, R]"},
	{name: "Throwing{N}UnaryOperator", target: "throwing.Func1[{K}, {K}]"},
	{name: "Throwing{N}Predicate", target: "throwing.Predicate1[{K}]"},
	{name: "ThrowingBi{N}Predicate", target: "throwing.Predicate2[{K}, {K}]"},
	{name: "Throwing{N}Consumer", target: "throwing.Consumer1[{K}]"},
}

var conversionShape = shape{name: "{N}To{M}Function", target: "fn.Func1[{K}, {J}]"}

// Alias is one rendered type alias declaration.
type Alias struct {
	Name   string
	Params string
	Target string
}

type Group struct {
	Kind    TypeEntity
	Aliases []Alias
}

func (s shape) expand(r *strings.Replacer) Alias {
	return Alias{
		Name:   r.Replace(s.name),
		Params: s.params,
		Target: r.Replace(s.target),
	}
}

// Expand builds one group per kind: the kind shapes followed by the
// conversions to every other kind, in catalogue order.
func Expand(kinds []TypeEntity) []Group {
	groups := make([]Group, 0, len(kinds))
	for _, k := range kinds {
		r := strings.NewReplacer("{N}", k.Name, "{K}", k.GoName)

		aliases := make([]Alias, 0, len(kindShapes)+len(kinds)-1)
		for _, s := range kindShapes {
			aliases = append(aliases, s.expand(r))
		}
		for _, m := range kinds {
			if m.Equal(k) {
				continue
			}
			aliases = append(aliases, conversionShape.expand(strings.NewReplacer(
				"{N}", k.Name, "{K}", k.GoName, "{M}", m.Name, "{J}", m.GoName)))
		}

		groups = append(groups, Group{Kind: k, Aliases: aliases})
	}
	return groups
}

// checkAliases fails when two groups declare the same alias name, as kinds
// named Int and BiInt would with BiIntFunction.
func checkAliases(groups []Group) error {
	names := lo.FlatMap(groups, func(g Group, _ int) []string {
		return lo.Map(g.Aliases, func(a Alias, _ int) string { return a.Name })
	})
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrAliasCollision, dups[0])
	}
	return nil
}
