package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

const defaultMimeType = "application/octet-stream"

// EncodeDataURI wraps a payload as a self-describing base64 data URI.
func EncodeDataURI(mimeType string, payload []byte) string {
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

// DecodeDataURI strips the scheme/media-type prefix and decodes the payload.
// Percent-encoded (non-base64) URIs are accepted as well.
func DecodeDataURI(uri string) (string, []byte, error) {
	meta, encoded, found := strings.Cut(uri, ",")
	if !found || !strings.HasPrefix(meta, "data:") {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	mimeType := strings.TrimPrefix(meta, "data:")
	if strings.HasSuffix(mimeType, ";base64") {
		mimeType = strings.TrimSuffix(mimeType, ";base64")
		if mimeType == "" {
			mimeType = defaultMimeType
		}
		payload, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", nil, fmt.Errorf("failed to decode base64 payload: %w", err)
		}
		return mimeType, payload, nil
	}

	if mimeType == "" {
		mimeType = defaultMimeType
	}
	unescaped, err := url.PathUnescape(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("failed to unescape payload: %w", err)
	}
	return mimeType, []byte(unescaped), nil
}
