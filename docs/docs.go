// Package docs registers the API document with swag so that echo-swagger serves it
// under /swagger/. Import it for its side effect.
package docs

import (
	"encoding/json"
	"log/slog"
	"sync"

	"deliveryhub/api"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

var readDoc = sync.OnceValue(func() string {
	doc, err := api.Load()
	if err != nil {
		slog.Error("load api document", slog.Any("error", err))
		return "{}"
	}
	data, err := json.Marshal(doc)
	if err != nil {
		slog.Error("encode api document", slog.Any("error", err))
		return "{}"
	}
	return string(data)
})

// ReadDoc returns the document as JSON.
func (openAPIDoc) ReadDoc() string {
	return readDoc()
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
