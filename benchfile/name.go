// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfile

import (
	"fmt"
	"strings"
)

// toolAliases maps filename tool tokens to the display names used in
// the paper figures. Tokens without an entry pass through unchanged.
var toolAliases = map[string]string{
	"nanostat8": "nanostat-t8",
	"rbt":       "rust-bio-tools",
}

// A Name holds the categorical fields decoded from one benchmark
// filename. Fields a layout does not define are empty.
type Name struct {
	Tool string
	Task string
	File string
}

// ParseName decodes an underscore-separated benchmark filename
// according to the layout. The name must split into exactly as many
// tokens as the layout declares fields.
func ParseName(name string, layout Layout) (Name, error) {
	tokens := strings.Split(name, "_")
	if len(tokens) != len(layout.Fields) {
		return Name{}, fmt.Errorf("%s: name has %d underscore-separated tokens, %s layout wants %d", name, len(tokens), layout.Name, len(layout.Fields))
	}

	var n Name
	set := func(field, value string) error {
		switch field {
		case "tool":
			if alias, ok := toolAliases[value]; ok {
				value = alias
			}
			n.Tool = value
		case "task":
			n.Task = value
		case "file":
			n.File = value
		default:
			return fmt.Errorf("%s: layout %s declares unknown field %q", name, layout.Name, field)
		}
		return nil
	}
	for i, field := range layout.Fields {
		if err := set(field, tokens[i]); err != nil {
			return Name{}, err
		}
	}
	for field, value := range layout.Fixed {
		if err := set(field, value); err != nil {
			return Name{}, err
		}
	}
	return n, nil
}

// FullVariant reports whether the name designates a full-dataset run.
func (n Name) FullVariant() bool {
	return n.File == FullVariantToken
}
