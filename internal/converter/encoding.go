package converter

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DetectEncoding returns the encoding of an HTML document together with its
// WHATWG name. A BOM wins, then a <meta> declaration in the first 1024 bytes,
// then UTF-8 if the bytes validate, then windows-1252.
func DetectEncoding(content []byte) (encoding.Encoding, string) {
	e, name, _ := charset.DetermineEncoding(content, "text/html")
	return e, name
}

// ToUTF8 converts content from its detected encoding to UTF-8
func ToUTF8(content []byte) ([]byte, error) {
	e, name := DetectEncoding(content)
	if name == "utf-8" {
		return content, nil
	}

	reader := transform.NewReader(bytes.NewReader(content), e.NewDecoder())
	return io.ReadAll(reader)
}
