package server

import (
	"net/http"

	"github.com/dshills/codescore/internal/profile"
	"github.com/dshills/codescore/internal/schema"
)

type SchemaController interface {
	GetResultSchema(w http.ResponseWriter, r *http.Request)
}

func NewSchemaController(p *profile.Profile) SchemaController {
	return &schemaControllerImpl{profile: p}
}

type schemaControllerImpl struct {
	profile *profile.Profile
}

func (s *schemaControllerImpl) GetResultSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, schema.Generate(s.profile))
}
