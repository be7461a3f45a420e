package document

import "errors"

var (
	// ErrUnsupportedEncoding is returned when the encoding label is not in
	// the WHATWG label table.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUndecodable is returned when the file content is not valid under
	// the declared encoding.
	ErrUndecodable = errors.New("content cannot be decoded")
)
