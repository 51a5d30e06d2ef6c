package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "local_format_leading_zero",
			input:    "081234567890",
			expected: "6281234567890",
		},
		{
			name:     "already_international",
			input:    "6281234567890",
			expected: "6281234567890",
		},
		{
			name:     "plus_prefix",
			input:    "+62 812-3456-7890",
			expected: "6281234567890",
		},
		{
			name:     "spaces_and_dashes",
			input:    "0812 3456 7890",
			expected: "6281234567890",
		},
		{
			name:     "trunk_zero_before_subscriber_starting_62",
			input:    "0628123456789",
			expected: "628123456789",
		},
		{
			name:     "bare_subscriber_number",
			input:    "81234567890",
			expected: "6281234567890",
		},
		{
			name:    "no_digits",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestChatID(t *testing.T) {
	chatID, err := ChatID("081234567890")
	require.NoError(t, err)
	assert.Equal(t, "6281234567890@c.us", chatID)

	_, err = ChatID("---")
	require.Error(t, err)
}

func newTestClient(cfg config.WhatsAppConfig, httpClient *testutil.MockHTTPClient) Client {
	return NewClient(&config.Configuration{WhatsApp: cfg}, httpClient, logger.NewNopLogger())
}

func TestSendNotConfiguredIsNoOp(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	client := newTestClient(config.WhatsAppConfig{}, httpClient)

	assert.False(t, client.Configured())
	err := client.Send(context.Background(), "081234567890", "halo")
	require.NoError(t, err)
	assert.Empty(t, httpClient.Requests())
}

func TestSendPlaceholderCredentialsIsNoOp(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	client := newTestClient(config.WhatsAppConfig{
		GatewayURL: "http://waha.local",
		APIKey:     "your-api-key-here",
		Session:    "default",
	}, httpClient)

	assert.False(t, client.Configured())
	require.NoError(t, client.Send(context.Background(), "081234567890", "halo"))
	assert.Empty(t, httpClient.Requests())
}

func TestSendPostsGatewayPayload(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	httpClient.RegisterResponse("/api/sendText", testutil.MockResponse{
		StatusCode: http.StatusCreated,
		Body:       []byte(`{"id":"msg-1"}`),
	})

	client := newTestClient(config.WhatsAppConfig{
		GatewayURL: "http://waha.local",
		APIKey:     "secret-key",
		Session:    "default",
	}, httpClient)

	err := client.Send(context.Background(), "081234567890", "Permohonan Anda telah kami terima.")
	require.NoError(t, err)

	requests := httpClient.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "http://waha.local/api/sendText", requests[0].URL)
	assert.Equal(t, "secret-key", requests[0].Headers["X-Api-Key"])

	var payload map[string]string
	require.NoError(t, json.Unmarshal(requests[0].Body, &payload))
	assert.Equal(t, "default", payload["session"])
	assert.Equal(t, "6281234567890@c.us", payload["chatId"])
	assert.Equal(t, "Permohonan Anda telah kami terima.", payload["text"])
}

func TestSendGatewayError(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	httpClient.RegisterResponse("/api/sendText", testutil.MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"error":"invalid api key"}`),
	})

	client := newTestClient(config.WhatsAppConfig{
		GatewayURL: "http://waha.local",
		APIKey:     "secret-key",
		Session:    "default",
	}, httpClient)

	err := client.Send(context.Background(), "081234567890", "halo")
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}
