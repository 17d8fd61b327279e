package formfield

import (
	"io/fs"

	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in field and page templates so callers
// can copy or extend them and pass the result back with
// vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the default stylesheet for the stable field class names.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formfield.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
