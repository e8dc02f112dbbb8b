package analysis

// NewResult builds the base result for a file: metadata filled in,
// breakdown zeroed, no recommendations.
func NewResult(fileName, content string, fileType FileType) *Result {
	return &Result{
		Recommendations: []string{},
		FileName:        fileName,
		FileSize:        len(content),
		FileContent:     content,
		FileType:        fileType,
	}
}
