// Package analysis defines the result of scoring a single source file.
package analysis

// Result is the top-level output object for one analyzed file.
type Result struct {
	OverallScore    int       `json:"overall_score" jsonschema:"minimum=0,maximum=100"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations" jsonschema:"minItems=1,maxItems=5"`
	FileName        string    `json:"file_name"`
	FileSize        int       `json:"file_size" jsonschema:"minimum=0"`
	FileContent     string    `json:"file_content"`
	FileType        FileType  `json:"file_type" jsonschema:"enum=js,enum=jsx,enum=py"`
}

// Breakdown holds one sub-score per category.
type Breakdown struct {
	Naming        int `json:"naming" jsonschema:"minimum=0,maximum=10"`
	Modularity    int `json:"modularity" jsonschema:"minimum=0,maximum=20"`
	Comments      int `json:"comments" jsonschema:"minimum=0,maximum=20"`
	Formatting    int `json:"formatting" jsonschema:"minimum=0,maximum=15"`
	Reusability   int `json:"reusability" jsonschema:"minimum=0,maximum=15"`
	BestPractices int `json:"best_practices" jsonschema:"minimum=0,maximum=20"`
}

// Get returns the sub-score for c, or 0 for an unknown category.
func (b Breakdown) Get(c Category) int {
	switch c {
	case CategoryNaming:
		return b.Naming
	case CategoryModularity:
		return b.Modularity
	case CategoryComments:
		return b.Comments
	case CategoryFormatting:
		return b.Formatting
	case CategoryReusability:
		return b.Reusability
	case CategoryBestPractices:
		return b.BestPractices
	}
	return 0
}

// Set assigns the sub-score for c. Unknown categories are ignored.
func (b *Breakdown) Set(c Category, v int) {
	switch c {
	case CategoryNaming:
		b.Naming = v
	case CategoryModularity:
		b.Modularity = v
	case CategoryComments:
		b.Comments = v
	case CategoryFormatting:
		b.Formatting = v
	case CategoryReusability:
		b.Reusability = v
	case CategoryBestPractices:
		b.BestPractices = v
	}
}

// Total sums all sub-scores.
func (b Breakdown) Total() int {
	return b.Naming + b.Modularity + b.Comments + b.Formatting + b.Reusability + b.BestPractices
}
