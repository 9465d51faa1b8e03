package docs

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
)

func TestSwaggerDocumentDescribesAPIRoutes(t *testing.T) {
	var document struct {
		Swagger  string                                `json:"swagger"`
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &document); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}

	if document.Swagger != "2.0" || document.BasePath != "/api" {
		t.Errorf("swagger = %q, basePath = %q", document.Swagger, document.BasePath)
	}

	want := map[string][]string{
		"/nasa/rainfall":   {"get"},
		"/weather/current": {"get"},
		"/weather/history": {"get"},
		"/weather/save":    {"post"},
	}
	got := make(map[string][]string, len(document.Paths))
	for path, operations := range document.Paths {
		for method := range operations {
			got[path] = append(got[path], method)
		}
		sort.Strings(got[path])
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("documented routes = %v, want %v", got, want)
	}
}
