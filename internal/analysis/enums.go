package analysis

// Language selects the regex variants the checkers run with.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageJavaScript, LanguagePython:
		return true
	}
	return false
}

// FileType is the wire-level file kind of an analyzed file.
type FileType string

const (
	FileTypeJS  FileType = "js"
	FileTypeJSX FileType = "jsx"
	FileTypePy  FileType = "py"
)

func (f FileType) Valid() bool {
	switch f {
	case FileTypeJS, FileTypeJSX, FileTypePy:
		return true
	}
	return false
}

// Language returns the checker language a file type is analyzed with.
func (f FileType) Language() Language {
	if f == FileTypePy {
		return LanguagePython
	}
	return LanguageJavaScript
}

// Category names one quality dimension of the breakdown.
type Category string

const (
	CategoryNaming        Category = "naming"
	CategoryModularity    Category = "modularity"
	CategoryComments      Category = "comments"
	CategoryFormatting    Category = "formatting"
	CategoryReusability   Category = "reusability"
	CategoryBestPractices Category = "best_practices"
)

// Categories lists every category in evaluation order. Recommendations
// are concatenated in this order.
var Categories = []Category{
	CategoryNaming,
	CategoryFormatting,
	CategoryComments,
	CategoryModularity,
	CategoryReusability,
	CategoryBestPractices,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryNaming, CategoryModularity, CategoryComments,
		CategoryFormatting, CategoryReusability, CategoryBestPractices:
		return true
	}
	return false
}

// Title is the human-readable category name used in reports.
func (c Category) Title() string {
	switch c {
	case CategoryNaming:
		return "Naming Conventions"
	case CategoryModularity:
		return "Function Length & Modularity"
	case CategoryComments:
		return "Comments & Documentation"
	case CategoryFormatting:
		return "Formatting & Indentation"
	case CategoryReusability:
		return "Reusability & DRY"
	case CategoryBestPractices:
		return "Best Practices"
	}
	return string(c)
}
