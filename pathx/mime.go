package pathx

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MimeType returns the MIME type of the file at path, the way
// `file --mime-type` would report it.
//
// The extension table is consulted first; when the extension is unknown (or
// absent) the first 512 bytes of the file are sniffed. Any charset parameter
// ("; charset=utf-8") is stripped from the result.
func MimeType(path string) (string, error) {
	if ext := filepath.Ext(path); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return stripParams(t), nil
		}
	}
	return SniffMimeType(path)
}

// SniffMimeType detects the MIME type from the file's leading bytes only,
// ignoring its name. Unrecognised content reports as
// "application/octet-stream".
func SniffMimeType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("pathx: sniff %q: %w", path, err)
	}
	defer f.Close()

	// DetectContentType considers at most the first 512 bytes.
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("pathx: sniff %q: %w", path, err)
	}
	return stripParams(http.DetectContentType(buf[:n])), nil
}

func stripParams(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
