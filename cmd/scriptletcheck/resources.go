package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/robfig/scriptlets/resource"
)

// resourceJSON mirrors the Resource record format from spec.md §6 (the
// engine-supplied wire format), with Content given as raw text rather than
// pre-encoded base64 for convenience when hand-authoring a resources file.
type resourceJSON struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	Kind         string   `json:"kind"` // "template" or "mime"
	Mime         string   `json:"mime"` // only when kind == "mime"
	Content      string   `json:"content"`
	Dependencies []string `json:"dependencies"`
	Permission   uint8    `json:"permission"`
}

// loadResources reads a JSON array of resourceJSON records from path and
// converts each to a resource.Resource.
func loadResources(path string) ([]resource.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []resourceJSON
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := make([]resource.Resource, 0, len(raw))
	for _, rj := range raw {
		var kind resource.Kind
		switch rj.Kind {
		case "template":
			kind = resource.KindTemplate()
		case "mime":
			kind = resource.KindMime(resource.MimeType(rj.Mime))
		default:
			return nil, fmt.Errorf("resource %q: unknown kind %q", rj.Name, rj.Kind)
		}

		out = append(out, resource.Resource{
			Name:         rj.Name,
			Aliases:      rj.Aliases,
			Kind:         kind,
			Content:      base64.StdEncoding.EncodeToString([]byte(rj.Content)),
			Dependencies: rj.Dependencies,
			Permission:   resource.PermissionMask(rj.Permission),
		})
	}
	return out, nil
}
