package document

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding assumed when none is configured.
const DefaultEncoding = "utf-8"

// newlines rewrites CRLF and lone CR to LF. "\r\n" is listed first so
// it wins over "\r" at the same position.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Document is the decoded content of a single file.
type Document struct {
	// Path is the file the content was read from.
	Path string

	// Encoding is the canonical name of the encoding used to decode the file.
	Encoding string

	// Content is the decoded text.
	Content string
}

// Load reads the whole file at path and decodes it under the named encoding.
// An empty encoding means DefaultEncoding.
//
// Every error returned by Load is fatal to the caller: a missing or
// unreadable file surfaces as the underlying *fs.PathError (wrapped), bad
// content as ErrUndecodable and an unknown label as ErrUnsupportedEncoding.
func Load(path, encodingLabel string) (*Document, error) {
	enc, name, err := lookup(encodingLabel)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // Reading a user-chosen input file is the point of this tool
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := decode(data, enc, name)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as %s: %w", path, name, err)
	}

	return &Document{
		Path:     path,
		Encoding: name,
		Content:  newlines.Replace(text),
	}, nil
}

// lookup resolves an encoding label to its encoding and canonical name.
func lookup(label string) (encoding.Encoding, string, error) {
	if strings.TrimSpace(label) == "" {
		label = DefaultEncoding
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	return enc, name, nil
}

// decode converts raw bytes to a UTF-8 string.
//
// UTF-8 goes through a validator instead of a decoder: the x/text UTF-8
// decoder substitutes U+FFFD for bad bytes, and bad bytes must fail here.
func decode(data []byte, enc encoding.Encoding, name string) (string, error) {
	if name == DefaultEncoding {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUndecodable, err)
		}
		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	return string(out), nil
}
