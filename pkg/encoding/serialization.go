package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoder writes values in one text format.
type Encoder interface {
	Name() string
	Encode(w io.Writer, v any) error
}

var encoders = map[string]Encoder{
	"yaml": yamlEncoder{},
	"json": jsonEncoder{},
}

// ForFormat returns the encoder registered under name.
func ForFormat(name string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, want one of %s", name, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Formats lists the registered format names in order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type yamlEncoder struct{}

func (yamlEncoder) Name() string { return "yaml" }

func (yamlEncoder) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type jsonEncoder struct{}

func (jsonEncoder) Name() string { return "json" }

func (jsonEncoder) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
