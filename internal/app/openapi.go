package app

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/bedtime/internal/route"
)

// apiDoc is the subset of OpenAPI 3.1 the bootstrap can describe: metadata,
// tags in mount order, and the routes each group registers.
type apiDoc struct {
	OpenAPI string                             `json:"openapi"`
	Info    apiInfo                            `json:"info"`
	Tags    []apiTag                           `json:"tags"`
	Paths   map[string]map[string]apiOperation `json:"paths"`
}

type apiInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type apiTag struct {
	Name string `json:"name"`
}

type apiOperation struct {
	Tags        []string `json:"tags"`
	OperationID string   `json:"operationId"`
}

// buildAPIDoc renders the document once at bootstrap.  Output depends only
// on its inputs; encoding/json sorts map keys.
func buildAPIDoc(name, version string, mounts []route.Mount, groups []chi.Router) []byte {
	doc := apiDoc{
		OpenAPI: "3.1.0",
		Info:    apiInfo{Title: name, Version: version},
		Paths: map[string]map[string]apiOperation{
			"/": {"get": {Tags: []string{rootTag}, OperationID: "read_root"}},
		},
	}

	for i, m := range mounts {
		doc.Tags = append(doc.Tags, apiTag{Name: m.Tag})

		type op struct{ method, path string }
		var ops []op
		_ = chi.Walk(groups[i], func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			p := m.Prefix + strings.TrimSuffix(pattern, "/")
			ops = append(ops, op{method: strings.ToLower(method), path: p})
			return nil
		})
		sort.Slice(ops, func(a, b int) bool {
			if ops[a].path != ops[b].path {
				return ops[a].path < ops[b].path
			}
			return ops[a].method < ops[b].method
		})

		for _, o := range ops {
			if doc.Paths[o.path] == nil {
				doc.Paths[o.path] = map[string]apiOperation{}
			}
			doc.Paths[o.path][o.method] = apiOperation{
				Tags:        []string{m.Tag},
				OperationID: operationID(o.method, o.path),
			}
		}
	}
	doc.Tags = append(doc.Tags, apiTag{Name: rootTag})

	b, err := json.Marshal(doc)
	if err != nil {
		// Every field is a string, slice, or map of strings.
		panic(err)
	}
	return b
}

// operationID turns ("get", "/api/v1/stories/{id}") into
// "get_api_v1_stories_id".
func operationID(method, path string) string {
	r := strings.NewReplacer("/", "_", "{", "", "}", "", "-", "_", "*", "any")
	return method + strings.TrimSuffix(r.Replace(path), "_")
}
