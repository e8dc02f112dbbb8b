package server

import (
	"fmt"
	"strings"
)

// CustomError is the JSON error body of every failed request. Message is
// always set; $name placeholders in it are replaced from Params.
type CustomError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func (c CustomError) Error() string {
	msg := c.Message
	for k, v := range c.Params {
		msg = strings.ReplaceAll(msg, "$"+k, fmt.Sprintf("%v", v))
	}
	return msg
}

const BadRequestBody = "10"
const BadRequestBodyMsg = "Request body must be multipart/form-data"

const RequiredParamsMissing = "15"
const RequiredParamsMissingMsg = "No file uploaded"

const IncorrectMultipartFile = "1000"
const IncorrectMultipartFileMsg = "Unable to read Multipart file"

const UnsupportedFileType = "3000"
const UnsupportedFileTypeMsg = "Unsupported file type"

const NoFileExtension = "3001"
const NoFileExtensionMsg = "Could not determine file extension"

const FileTooLarge = "3002"
const FileTooLargeMsg = "File exceeds the maximum size of $limit bytes"

const InvalidAnalysisResult = "5000"
const InvalidAnalysisResultMsg = "Error generating analysis result"

const AnalysisFailed = "5001"
const AnalysisFailedMsg = "Error analyzing code"
