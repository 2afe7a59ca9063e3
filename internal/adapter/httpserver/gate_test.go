package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	apperrors "github.com/pscheid92/sentimentapi/internal/platform/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(pairs ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Add(pairs[i], pairs[i+1])
	}
	return h
}

func TestRequireAccept(t *testing.T) {
	check := RequireAccept(testAccept)

	assert.Nil(t, check(headers("Accept", testAccept)))

	for name, value := range map[string]string{
		"missing":        "",
		"wildcard":       "*/*",
		"plain json":     "application/json",
		"different case": "application/VND.premier.v1.hal+json",
		"with q-value":   testAccept + ";q=1.0",
		"list":           "application/json, " + testAccept,
	} {
		t.Run(name, func(t *testing.T) {
			h := http.Header{}
			if value != "" {
				h.Set("Accept", value)
			}
			err := check(h)
			require.NotNil(t, err)
			assert.Equal(t, apperrors.KindUnacceptableMediaType, err.Kind)
			assert.Equal(t, http.StatusNotAcceptable, err.HTTPStatus())
		})
	}
}

func TestRejectLegacyEncodings(t *testing.T) {
	check := RejectLegacyEncodings([]string{"identity", "gzip", "deflate"})

	passing := []string{
		"",
		"gzip",
		"gzip, deflate",
		"identity",
		"br",
		"gzip, br, zstd",
		"*",
		"compress;q=0.5",
		"COMPRESS",
		"xcompress",
	}
	for _, value := range passing {
		assert.Nil(t, check(headers("Accept-Encoding", value)), "expected %q to pass", value)
	}

	failing := []string{
		"compress",
		"x-compress",
		"gzip, compress",
		"  x-compress  , gzip",
		"br,compress,zstd",
	}
	for _, value := range failing {
		err := check(headers("Accept-Encoding", value))
		require.NotNil(t, err, "expected %q to fail", value)
		assert.Equal(t, apperrors.KindUnacceptableEncoding, err.Kind)
		assert.Equal(t, http.StatusNotAcceptable, err.HTTPStatus())
	}
}

func TestRejectLegacyEncodings_MultipleHeaderLines(t *testing.T) {
	check := RejectLegacyEncodings([]string{"identity", "gzip", "deflate"})

	err := check(headers("Accept-Encoding", "gzip", "Accept-Encoding", "x-compress"))

	require.NotNil(t, err)
	assert.Equal(t, apperrors.KindUnacceptableEncoding, err.Kind)
}

func TestRequireContentType(t *testing.T) {
	check := RequireContentType("application/json")

	assert.Nil(t, check(headers("Content-Type", "application/json")))

	for _, value := range []string{"", "application/json; charset=utf-8", "text/plain", "Application/JSON"} {
		h := http.Header{}
		if value != "" {
			h.Set("Content-Type", value)
		}
		err := check(h)
		require.NotNil(t, err, "expected %q to fail", value)
		assert.Equal(t, apperrors.KindUnsupportedMediaType, err.Kind)
		assert.Equal(t, http.StatusUnsupportedMediaType, err.HTTPStatus())
	}
}

func TestRunGate_Order(t *testing.T) {
	gate := NewRequestGate(testAccept)

	tests := []struct {
		name     string
		h        http.Header
		wantKind apperrors.Kind
	}{
		{
			name:     "all wrong reports accept",
			h:        headers("Accept", "text/html", "Accept-Encoding", "compress", "Content-Type", "text/plain"),
			wantKind: apperrors.KindUnacceptableMediaType,
		},
		{
			name:     "encoding before content type",
			h:        headers("Accept", testAccept, "Accept-Encoding", "compress", "Content-Type", "text/plain"),
			wantKind: apperrors.KindUnacceptableEncoding,
		},
		{
			name:     "content type last",
			h:        headers("Accept", testAccept, "Accept-Encoding", "gzip", "Content-Type", "text/plain"),
			wantKind: apperrors.KindUnsupportedMediaType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunGate(gate, tt.h)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantKind, err.Kind)
		})
	}

	assert.Nil(t, RunGate(gate, headers("Accept", testAccept, "Content-Type", "application/json")))
}

func TestGateMiddleware_RejectsBeforeHandler(t *testing.T) {
	analysis := &mockAnalysisService{}
	recorder := &mockGateRecorder{}
	srv := newTestServer(t, analysis, withGateRecorder(recorder))

	tests := []struct {
		name       string
		mutate     func(*http.Request)
		wantStatus int
		wantError  string
	}{
		{"wrong accept", func(r *http.Request) { r.Header.Set("Accept", "application/json") }, http.StatusNotAcceptable, "Invalid Accept header"},
		{"legacy encoding", func(r *http.Request) { r.Header.Set("Accept-Encoding", "x-compress") }, http.StatusNotAcceptable, "Invalid Accept-Encoding header"},
		{"wrong content type", func(r *http.Request) { r.Header.Set("Content-Type", "text/plain") }, http.StatusUnsupportedMediaType, "Invalid Content-Type header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newAnalyzeRequest("", `{"a": "I love this."}`)
			tt.mutate(req)

			rec := serve(srv, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, map[string]string{"error": tt.wantError}, resp)
		})
	}

	assert.Zero(t, analysis.calls.Load())
	assert.Equal(t, []string{"unacceptable_media_type", "unacceptable_encoding", "unsupported_media_type"}, recorder.kinds)
}
