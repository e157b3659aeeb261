package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	uri := EncodeDataURI("text/plain", []byte("hello"))
	require.Equal(t, "data:text/plain;base64,aGVsbG8=", uri)

	mimeType, payload, err := DecodeDataURI(uri)
	require.NoError(t, err)
	require.Equal(t, "text/plain", mimeType)
	require.Equal(t, []byte("hello"), payload)
}

func TestEncodeDefaultsMimeType(t *testing.T) {
	uri := EncodeDataURI("", []byte{0x00, 0x01})
	mimeType, payload, err := DecodeDataURI(uri)
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", mimeType)
	require.Equal(t, []byte{0x00, 0x01}, payload)
}

func TestDecodePercentEncoded(t *testing.T) {
	mimeType, payload, err := DecodeDataURI("data:text/plain,hello%20world")
	require.NoError(t, err)
	require.Equal(t, "text/plain", mimeType)
	require.Equal(t, []byte("hello world"), payload)
}

func TestDecodeMalformed(t *testing.T) {
	for _, uri := range []string{
		"",
		"no comma",
		"http://example.com,payload",
		"data:text/plain;base64,!!!not-base64!!!",
	} {
		_, _, err := DecodeDataURI(uri)
		require.Error(t, err, "uri %q should be rejected", uri)
	}
}
