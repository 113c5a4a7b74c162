package generator

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/cespare/xxhash/v2"
)

//go:embed aliases.tmpl
var aliasesTemplate string

var tmpl = template.Must(template.New("aliases").Parse(aliasesTemplate))

// Output is a rendered, gofmt-ed source file.
type Output struct {
	Source      []byte
	Fingerprint uint64
	Aliases     int
}

// Render expands the catalogue and formats the resulting Go file.
func Render(c Catalogue) (Output, error) {
	kinds, err := c.Entities()
	if err != nil {
		return Output{}, err
	}
	groups := Expand(kinds)
	if err := checkAliases(groups); err != nil {
		return Output{}, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Groups  []Group
	}{
		Package: c.Package,
		Groups:  groups,
	})
	if err != nil {
		return Output{}, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return Output{}, fmt.Errorf("format generated source: %w", err)
	}

	count := 0
	for _, g := range groups {
		count += len(g.Aliases)
	}

	return Output{
		Source:      src,
		Fingerprint: xxhash.Sum64(src),
		Aliases:     count,
	}, nil
}
