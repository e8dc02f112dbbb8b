package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
	"github.com/invopop/jsonschema"
)

// Generate reflects the JSON Schema of analysis.Result. Category maxima
// and the recommendation limit are taken from p, or from the built-in
// default when p is nil.
func Generate(p *profile.Profile) *jsonschema.Schema {
	if p == nil {
		p = profile.Default()
	}
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&analysis.Result{})
	s.Title = "codescore analysis result"

	if bd, ok := s.Properties.Get("breakdown"); ok {
		for _, c := range analysis.Categories {
			if prop, ok := bd.Properties.Get(string(c)); ok {
				prop.Maximum = json.Number(strconv.Itoa(p.Max(c)))
			}
		}
	}
	if recs, ok := s.Properties.Get("recommendations"); ok {
		limit := uint64(p.MaxRecommendations)
		recs.MaxItems = &limit
	}
	return s
}

// GenerateJSON returns the indented JSON encoding of Generate(p).
func GenerateJSON(p *profile.Profile) ([]byte, error) {
	data, err := json.MarshalIndent(Generate(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema.GenerateJSON: %w", err)
	}
	return data, nil
}
