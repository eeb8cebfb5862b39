package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// LookupRequest is the body of POST /lookup.
type LookupRequest struct {
	Strokes    []string `json:"strokes"`
	Dictionary *string  `json:"dictionary,omitempty"`
}

// LookupResponse is the result of a lookup.
type LookupResponse struct {
	Strokes    []string `json:"strokes"`
	Applicable bool     `json:"applicable"`
	Dictionary *string  `json:"dictionary,omitempty"`
	Output     *string  `json:"output,omitempty"`
	Error      *string  `json:"error,omitempty"`
}

// ExplainResponse is the result of GET /explain.
type ExplainResponse struct {
	Applicable bool    `json:"applicable"`
	Error      *string `json:"error,omitempty"`
	Resolution any     `json:"resolution"`
}

// GetLookupParams defines parameters for GetLookup.
type GetLookupParams struct {
	Stroke     string  `form:"stroke" json:"stroke"`
	Dictionary *string `form:"dictionary,omitempty" json:"dictionary,omitempty"`
}

// GetExplainParams defines parameters for GetExplain.
type GetExplainParams struct {
	Stroke string `form:"stroke" json:"stroke"`
	Engine string `form:"engine" json:"engine"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /lookup)
	GetLookup(w http.ResponseWriter, r *http.Request, params GetLookupParams)
	// (POST /lookup)
	PostLookup(w http.ResponseWriter, r *http.Request)
	// (GET /explain)
	GetExplain(w http.ResponseWriter, r *http.Request, params GetExplainParams)
	// (GET /dictionaries)
	GetDictionaries(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /info)
	GetInfo(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError reports a query parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts requests to handler parameters.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// GetLookup operation middleware
func (siw *ServerInterfaceWrapper) GetLookup(w http.ResponseWriter, r *http.Request) {
	var params GetLookupParams

	if err := runtime.BindQueryParameter("form", true, true, "stroke", r.URL.Query(), &params.Stroke); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "stroke", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "dictionary", r.URL.Query(), &params.Dictionary); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "dictionary", Err: err})
		return
	}

	siw.Handler.GetLookup(w, r, params)
}

// GetExplain operation middleware
func (siw *ServerInterfaceWrapper) GetExplain(w http.ResponseWriter, r *http.Request) {
	var params GetExplainParams

	if err := runtime.BindQueryParameter("form", true, true, "stroke", r.URL.Query(), &params.Stroke); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "stroke", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "engine", r.URL.Query(), &params.Engine); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "engine", Err: err})
		return
	}

	siw.Handler.GetExplain(w, r, params)
}

// HandlerFromMux registers the API routes on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	}

	r.Get("/lookup", wrapper.GetLookup)
	r.Post("/lookup", si.PostLookup)
	r.Get("/explain", wrapper.GetExplain)
	r.Get("/dictionaries", si.GetDictionaries)
	r.Get("/health", si.GetHealth)
	r.Get("/info", si.GetInfo)
	return r
}

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("invalid OpenAPI document: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}
