package generator

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType    = errors.New("unknown type")
	ErrBadName        = errors.New("name is not an exported identifier")
	ErrNoKinds        = errors.New("catalogue has no kinds")
	ErrDuplicateName  = errors.New("kind name is used more than once")
	ErrAliasCollision = errors.New("alias name is declared more than once")
)

var exportedIdent = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

type KindSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Catalogue lists the kinds the specializations are generated for.
type Catalogue struct {
	Package string     `yaml:"package"`
	Kinds   []KindSpec `yaml:"kinds"`
}

// DefaultCatalogue mirrors the primitive kinds of the classic functional
// interface libraries.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		Package: "specialized",
		Kinds: []KindSpec{
			{Name: "Bool", Type: "bool"},
			{Name: "Byte", Type: "byte"},
			{Name: "Rune", Type: "rune"},
			{Name: "Int16", Type: "int16"},
			{Name: "Int", Type: "int"},
			{Name: "Int64", Type: "int64"},
			{Name: "Float32", Type: "float32"},
			{Name: "Float64", Type: "float64"},
		},
	}
}

func LoadCatalogue(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, err
	}
	return ParseCatalogue(data)
}

func ParseCatalogue(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("parse catalogue: %w", err)
	}
	if c.Package == "" {
		c.Package = DefaultCatalogue().Package
	}
	return c, nil
}

// Entities resolves the catalogue kinds. Kinds naming an identical type
// are reported once, in the order of first appearance. Every kind needs a
// name of its own.
func (c Catalogue) Entities() ([]TypeEntity, error) {
	if len(c.Kinds) == 0 {
		return nil, ErrNoKinds
	}
	if dups := lo.FindDuplicatesBy(c.Kinds, func(k KindSpec) string { return k.Name }); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, dups[0].Name)
	}

	entities := make([]TypeEntity, 0, len(c.Kinds))
	for _, k := range c.Kinds {
		if !exportedIdent.MatchString(k.Name) {
			return nil, fmt.Errorf("%w: %q", ErrBadName, k.Name)
		}
		t, ok := LookupType(k.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, k.Type)
		}
		entities = append(entities, NewTypeEntity(k.Name, k.Type, t))
	}

	return lo.UniqBy(entities, TypeEntity.Key), nil
}
