package form

import (
	"bytes"
	"strings"
)

var crlf = []byte("\r\n")

// DecodeMultipart splits a raw multipart/form-data body on the given
// boundary and returns the decoded field map plus the single uploaded file.
//
// Parts whose header block cannot be located, or which carry no field name,
// are skipped rather than failing the whole body. Duplicate field names are
// resolved deterministically: the last occurrence wins. Only the first file
// part is captured; later file parts are ignored.
//
// A body without any file part fails with ErrNoFileUploaded.
func DecodeMultipart(body []byte, boundary string) (*Form, error) {
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	f := NewForm()
	for _, segment := range bytes.Split(body, []byte("--"+boundary)) {
		name, filename, content, ok := decodePart(segment)
		if !ok {
			continue
		}

		if filename != "" {
			if f.File == nil {
				f.File = &File{
					Filename: filename,
					// copy: the segment aliases the request body buffer,
					// which is released after the routing call returns
					Data: bytes.Clone(trimPartContent(content)),
				}
			}
			continue
		}

		f.Values[name] = string(bytes.TrimSpace(content))
	}

	if f.File == nil {
		return nil, ErrNoFileUploaded
	}

	return f, nil
}

// decodePart splits one boundary-delimited segment into its header block
// and content and extracts the Content-Disposition parameters. ok is false
// for the leading empty segment, the closing "--" marker, segments without
// a blank-line separator, and parts that declare no field name.
func decodePart(segment []byte) (name, filename string, content []byte, ok bool) {
	segment = bytes.TrimPrefix(segment, crlf)
	if len(segment) == 0 || bytes.HasPrefix(segment, []byte("--")) {
		return "", "", nil, false
	}

	headerBlock, rest, found := bytes.Cut(segment, []byte("\r\n\r\n"))
	if !found {
		// tolerate bare-LF producers
		headerBlock, rest, found = bytes.Cut(segment, []byte("\n\n"))
		if !found {
			return "", "", nil, false
		}
	}

	name, filename = contentDisposition(string(headerBlock))
	if name == "" {
		return "", "", nil, false
	}

	return name, filename, rest, true
}

// contentDisposition scans a part's header block for the
// Content-Disposition line and pulls out the name and filename parameters.
func contentDisposition(headerBlock string) (name, filename string) {
	for _, line := range strings.Split(headerBlock, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(strings.ToLower(line), "content-disposition:") {
			continue
		}

		name = headerParam(line, "name")
		filename = headerParam(line, "filename")
		return name, filename
	}

	return "", ""
}

// headerParam extracts the value of key from a header line of the shape
//
//	Content-Disposition: form-data; name="title"; filename="x.png"
//
// Values may be quoted or bare; a missing key yields "".
func headerParam(line, key string) string {
	for _, piece := range strings.Split(line, ";") {
		k, v, found := strings.Cut(strings.TrimSpace(piece), "=")
		if !found || !strings.EqualFold(k, key) {
			continue
		}
		return strings.Trim(v, `"`)
	}

	return ""
}

// trimPartContent strips the CRLF that the boundary layout forces onto the
// tail of a file part's content. File bytes themselves are never touched.
func trimPartContent(content []byte) []byte {
	content = bytes.TrimSuffix(content, crlf)
	return bytes.TrimSuffix(content, []byte("\n"))
}
