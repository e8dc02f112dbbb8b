package server

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to encode response: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithCustomError writes err as JSON with its own status.
func RespondWithCustomError(w http.ResponseWriter, err *CustomError) {
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", err.Status, err.Message, err.Params, err.Debug)
	body := *err
	body.Message = err.Error()
	respondWithJson(w, err.Status, body)
}

// respondWithError answers 500 with a generic message unless err already
// is a CustomError. Details go to the log only.
func respondWithError(w http.ResponseWriter, msg string, err error) {
	var customError *CustomError
	if errors.As(err, &customError) {
		RespondWithCustomError(w, customError)
		return
	}
	log.Errorf("%s: %s", msg, err.Error())
	RespondWithCustomError(w, &CustomError{
		Status:  http.StatusInternalServerError,
		Code:    AnalysisFailed,
		Message: msg,
	})
}
