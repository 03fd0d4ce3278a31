package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/infrastructure/ai"
)

func TestGeminiService_Chat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" Halo, "},{"text":"ada yang bisa dibantu?"}]}}]}`))
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("k", "gemini-test").WithBaseURL(srv.URL)
	reply, err := svc.Chat(context.Background(), "halo")
	require.NoError(t, err)
	assert.Equal(t, "Halo, ada yang bisa dibantu?", reply)
	assert.Contains(t, got, "system_instruction")
}

func TestGeminiService_ReadReceiptEnviaImagen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text       string `json:"text"`
					InlineData *struct {
						MimeType string `json:"mime_type"`
						Data     string `json:"data"`
					} `json:"inline_data"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Len(t, body.Contents[0].Parts, 2)
		require.NotNil(t, body.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "image/png", body.Contents[0].Parts[1].InlineData.MimeType)
		assert.Equal(t, "iVBO", body.Contents[0].Parts[1].InlineData.Data)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"\"toko\": Warung"}]}}]}`))
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL)
	text, err := svc.ReadReceipt(context.Background(), []byte{0x89, 0x50, 0x4e}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, `"toko": Warung`, text)
}

func TestGeminiService_SinAPIKey(t *testing.T) {
	_, err := ai.NewGeminiService("", "m").AnalyzeHPP(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestGeminiService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL).Chat(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiService_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL).Chat(ctx, "x")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
