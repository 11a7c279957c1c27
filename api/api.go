// Package api embeds the OpenAPI document of the HTTP API and exposes it to
// the router (/openapi.json) and to the Swagger UI registry.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// JSON returns the validated document rendered as JSON.
func JSON(ctx context.Context) ([]byte, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string { return d.json }

// RegisterSwagger publishes the document under swag's default instance name,
// where the echo-swagger handler looks it up. Registering twice is a no-op.
func RegisterSwagger(docJSON []byte) {
	if swag.GetSwagger(swag.Name) != nil {
		return
	}
	swag.Register(swag.Name, swaggerDoc{json: string(docJSON)})
}
