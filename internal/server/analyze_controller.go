package server

import (
	"errors"
	"net/http"

	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/schema"
	"github.com/dshills/codescore/internal/source"
	log "github.com/sirupsen/logrus"
)

const uploadField = "file"

// multipartOverhead leaves room for boundaries and part headers on top of
// the file size ceiling.
const multipartOverhead = 64 << 10

type AnalyzeController interface {
	AnalyzeCode(w http.ResponseWriter, r *http.Request)
}

func NewAnalyzeController(e *engine.Engine, maxUploadBytes int64) AnalyzeController {
	if maxUploadBytes <= 0 {
		maxUploadBytes = source.DefaultMaxBytes
	}
	return &analyzeControllerImpl{engine: e, maxUploadBytes: maxUploadBytes}
}

type analyzeControllerImpl struct {
	engine         *engine.Engine
	maxUploadBytes int64
}

func (a *analyzeControllerImpl) AnalyzeCode(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r)

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondWithCustomError(w, a.tooLarge(err))
			return
		}
		if errors.Is(err, http.ErrNotMultipart) {
			RespondWithCustomError(w, &CustomError{
				Status:  http.StatusBadRequest,
				Code:    BadRequestBody,
				Message: BadRequestBodyMsg,
				Debug:   err.Error(),
			})
			return
		}
		RespondWithCustomError(w, &CustomError{
			Status:  http.StatusBadRequest,
			Code:    IncorrectMultipartFile,
			Message: IncorrectMultipartFileMsg,
			Debug:   err.Error(),
		})
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Debugf("failed to remove multipart form temp data: %s", err.Error())
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			RespondWithCustomError(w, &CustomError{
				Status:  http.StatusBadRequest,
				Code:    RequiredParamsMissing,
				Message: RequiredParamsMissingMsg,
				Params:  map[string]interface{}{"params": uploadField},
			})
			return
		}
		RespondWithCustomError(w, &CustomError{
			Status:  http.StatusBadRequest,
			Code:    IncorrectMultipartFile,
			Message: IncorrectMultipartFileMsg,
			Debug:   err.Error(),
		})
		return
	}
	defer file.Close()

	src, err := source.Read(header.Filename, file, a.maxUploadBytes)
	if err != nil {
		if customErr := inputError(err, a.maxUploadBytes); customErr != nil {
			RespondWithCustomError(w, customErr)
			return
		}
		respondWithError(w, AnalysisFailedMsg, err)
		return
	}
	logger.Debugf("analyzing %s (%d bytes, %s)", src.Name, src.Size(), src.Hash)

	result, err := a.engine.AnalyzeFile(src)
	if err != nil {
		respondWithError(w, AnalysisFailedMsg, err)
		return
	}

	if errs := schema.Validate(result, a.engine.Profile()); len(errs) > 0 {
		for _, e := range errs {
			logger.Errorf("invalid analysis result for %s: %s", src.Name, e)
		}
		RespondWithCustomError(w, &CustomError{
			Status:  http.StatusInternalServerError,
			Code:    InvalidAnalysisResult,
			Message: InvalidAnalysisResultMsg,
		})
		return
	}

	respondWithJson(w, http.StatusOK, result)
}

func (a *analyzeControllerImpl) tooLarge(err error) *CustomError {
	return &CustomError{
		Status:  http.StatusBadRequest,
		Code:    FileTooLarge,
		Message: FileTooLargeMsg,
		Params:  map[string]interface{}{"limit": a.maxUploadBytes},
		Debug:   err.Error(),
	}
}

// inputError maps source rejections to client errors. It returns nil for
// anything else.
func inputError(err error, limit int64) *CustomError {
	switch {
	case errors.Is(err, source.ErrNoExtension):
		return &CustomError{Status: http.StatusBadRequest, Code: NoFileExtension, Message: NoFileExtensionMsg}
	case errors.Is(err, source.ErrUnsupportedExtension):
		return &CustomError{Status: http.StatusBadRequest, Code: UnsupportedFileType, Message: UnsupportedFileTypeMsg}
	case errors.Is(err, source.ErrTooLarge):
		return &CustomError{
			Status:  http.StatusBadRequest,
			Code:    FileTooLarge,
			Message: FileTooLargeMsg,
			Params:  map[string]interface{}{"limit": limit},
		}
	}
	return nil
}

func requestLogger(r *http.Request) *log.Entry {
	return log.WithField("request_id", r.Header.Get(RequestIDHeader))
}
