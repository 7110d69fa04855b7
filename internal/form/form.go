// Package form decodes raw HTTP request bodies into a uniform field map.
//
// Three encodings are supported: a single JSON object, URL-encoded form
// data, and multipart/form-data with an optional binary file part. The
// multipart codec is written against the raw byte layout rather than a
// general-purpose parsing library; correct decomposition of the body is the
// point of this package.
package form

// Form is the uniform result of decoding one request body. It is built
// fresh per request, owned exclusively by the handling goroutine, and
// discarded when the routing call returns.
type Form struct {
	// Values maps field names to their textual values.
	Values map[string]string

	// File is the single uploaded file of a multipart body, or nil.
	// Only one file per request is supported; the first file part wins.
	File *File
}

// File is a binary file part extracted from a multipart body.
type File struct {
	// Filename is the client-supplied original file name.
	Filename string

	// Data holds the raw file bytes. The slice is a copy, never an alias
	// into the request body buffer.
	Data []byte
}

// NewForm returns an empty Form ready to be populated.
func NewForm() *Form {
	return &Form{Values: make(map[string]string)}
}

// Get returns the value of the named field, or "" when absent.
func (f *Form) Get(name string) string {
	return f.Values[name]
}

// Missing returns the subset of required field names whose values are
// absent or empty, preserving the order they were asked for.
func (f *Form) Missing(required ...string) []string {
	var missing []string
	for _, name := range required {
		if f.Values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
