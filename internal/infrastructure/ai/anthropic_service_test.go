package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/infrastructure/ai"
	"github.com/bizness/bizness-api/pkg/config"
)

func TestAnthropicService_AnalyzeHPP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))

		var body struct {
			Model    string `json:"model"`
			System   string `json:"system"`
			Messages []struct {
				Role    string `json:"role"`
				Content []struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body.Model)
		assert.NotEmpty(t, body.System)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "nama produk = Kopi", body.Messages[0].Content[0].Text)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"HPP Summary: ok"}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("k", "claude-test").WithBaseURL(srv.URL)
	text, err := svc.AnalyzeHPP(context.Background(), "nama produk = Kopi")
	require.NoError(t, err)
	assert.Equal(t, "HPP Summary: ok", text)
}

func TestAnthropicService_ReadReceiptBloqueImagen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content []struct {
					Type   string `json:"type"`
					Source *struct {
						Type      string `json:"type"`
						MediaType string `json:"media_type"`
					} `json:"source"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		first := body.Messages[0].Content[0]
		assert.Equal(t, "image", first.Type)
		require.NotNil(t, first.Source)
		assert.Equal(t, "base64", first.Source.Type)
		assert.Equal(t, "image/jpeg", first.Source.MediaType)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"total_bayar: 14000"}]}`))
	}))
	defer srv.Close()

	text, err := ai.NewAnthropicService("k", "m").WithBaseURL(srv.URL).ReadReceipt(context.Background(), []byte("jpg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "total_bayar: 14000", text)
}

func TestAnthropicService_ErrorAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewAnthropicService("k", "m").WithBaseURL(srv.URL).Chat(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropicService_SinAPIKey(t *testing.T) {
	_, err := ai.NewAnthropicService("", "m").Chat(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestNewFromConfig(t *testing.T) {
	svc, err := ai.NewFromConfig(config.AIConfig{Provider: "gemini"})
	require.NoError(t, err)
	assert.IsType(t, &ai.GeminiService{}, svc)

	svc, err = ai.NewFromConfig(config.AIConfig{Provider: "anthropic"})
	require.NoError(t, err)
	assert.IsType(t, &ai.AnthropicService{}, svc)

	_, err = ai.NewFromConfig(config.AIConfig{Provider: "otro"})
	assert.Error(t, err)
}
