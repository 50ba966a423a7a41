package http_test

import (
	"path/filepath"
	"strings"
	"testing"

	inhttp "faithcafe/internal/adapters/in/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDocument(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "..", "api", "openapi.yml"))
	require.NoError(t, err)
	return doc
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc := loadDocument(t)
	require.NoError(t, doc.Validate(t.Context()))
}

// TestOpenAPIDocumentCoversRoutes keeps api/openapi.yml honest: every route
// the server registers must be documented, and every documented operation
// must be served.
func TestOpenAPIDocumentCoversRoutes(t *testing.T) {
	doc := loadDocument(t)

	e := echo.New()
	inhttp.NewServer(inhttp.Commands{}, inhttp.Queries{}).RegisterRoutes(e)

	served := make(map[string]bool)
	for _, route := range e.Routes() {
		served[route.Method+" "+openAPIPath(route.Path)] = true
	}

	documented := make(map[string]bool)
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented[method+" "+path] = true
		}
	}

	for operation := range served {
		assert.Contains(t, documented, operation)
	}
	for operation := range documented {
		assert.Contains(t, served, operation)
	}
}

// openAPIPath rewrites echo's :param segments as {param}.
func openAPIPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
