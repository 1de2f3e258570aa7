package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/sotavant/spicerack-skill/internal/skill"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
	"bitbucket.org/sotavant/spicerack-skill/internal/store/mock"
)

const testAppID = "amzn1.ask.skill.test"

func requestBody(appID, reqType, intent string) string {
	intentJSON := ""
	if intent != "" {
		intentJSON = fmt.Sprintf(`, "intent": {"name": %q, "slots": {"spice": {"name": "spice", "value": "cumin"}}}`, intent)
	}
	return fmt.Sprintf(`{
		"version": "1.0",
		"session": {
			"new": false,
			"application": {"applicationId": %q},
			"user": {"userId": "user-1"}
		},
		"request": {"type": %q, "requestId": "req-1"%s}
	}`, appID, reqType, intentJSON)
}

func newTestApp(s store.Store) *app {
	return newApp(skill.NewRouter(testAppID, skill.NewDispatcher(s, "Spice Rack Locator", "Spice Rack")))
}

func TestWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStore(ctrl)

	gomock.InOrder(
		s.EXPECT().
			GetSpice(gomock.Any(), "user-1", "cumin").
			Return(&store.SpiceRecord{OwnerID: "user-1", SpiceName: "cumin", Row: "2", Column: "4"}, nil),
		s.EXPECT().
			GetSpice(gomock.Any(), "user-1", "cumin").
			Return(nil, store.ErrNotFound),
		s.EXPECT().
			GetSpice(gomock.Any(), "user-1", "cumin").
			Return(nil, fmt.Errorf("%w: timeout", store.ErrUnavailable)),
	)

	appInstance := newTestApp(s)

	handler := http.HandlerFunc(appInstance.webhook)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	testCases := []struct {
		name         string
		method       string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "method_get",
			method:       http.MethodGet,
			expectedCode: http.StatusMethodNotAllowed,
		},
		{
			name:         "method_put",
			method:       http.MethodPut,
			expectedCode: http.StatusMethodNotAllowed,
		},
		{
			name:         "method_post_without_body",
			method:       http.MethodPost,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "wrong_application",
			method:       http.MethodPost,
			body:         requestBody("amzn1.ask.skill.other", "IntentRequest", "GetSpiceLocation"),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "unsupported_type",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "Display.ElementSelected", ""),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "unsupported_intent",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "IntentRequest", "OrderPizza"),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "launch",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "LaunchRequest", ""),
			expectedCode: http.StatusOK,
			expectedBody: `"title":"Spice Rack Locator"`,
		},
		{
			name:         "session_ended",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "SessionEndedRequest", ""),
			expectedCode: http.StatusOK,
			expectedBody: `^\{"version":"1.0","sessionAttributes":\{\}\}\s*$`,
		},
		{
			name:         "get_spice",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "IntentRequest", "GetSpiceLocation"),
			expectedCode: http.StatusOK,
			expectedBody: `"text":"cumin is on row 2, column 4."`,
		},
		{
			name:         "get_spice_not_found",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "IntentRequest", "GetSpiceLocation"),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "get_spice_store_down",
			method:       http.MethodPost,
			body:         requestBody(testAppID, "IntentRequest", "GetSpiceLocation"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := resty.New().R()
			r.Method = tc.method
			r.URL = srv.URL

			if len(tc.body) > 0 {
				r.SetHeader("Content-Type", "application/json")
				r.SetBody(tc.body)
			}

			resp, err := r.Send()
			assert.NoError(t, err, "error making request")

			assert.Equal(t, tc.expectedCode, resp.StatusCode(), "unexpected status code")
			if tc.expectedBody != "" {
				assert.Regexp(t, tc.expectedBody, string(resp.Body()))
			}
		})
	}
}

func TestGzipCompression(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStore(ctrl)

	appInstance := newTestApp(s)

	handler := gzipMiddleware(appInstance.webhook)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	body := requestBody(testAppID, "IntentRequest", "AMAZON.StopIntent")

	successBody := `{
		"version": "1.0",
		"sessionAttributes": {},
		"response": {
			"outputSpeech": {"type": "PlainText", "text": "Thanks for using Spice Rack Locator."},
			"shouldEndSession": true
		}
	}`

	t.Run("sends_gzip", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		zb := gzip.NewWriter(buf)
		_, err := zb.Write([]byte(body))
		require.NoError(t, err)
		err = zb.Close()
		require.NoError(t, err)

		r := httptest.NewRequest("POST", srv.URL, buf)
		r.RequestURI = ""
		r.Header.Set("Content-Encoding", "gzip")
		r.Header.Set("Accept-Encoding", "0")

		resp, err := http.DefaultClient.Do(r)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		defer func(Body io.ReadCloser) {
			err := Body.Close()
			require.NoError(t, err)
		}(resp.Body)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.JSONEq(t, successBody, string(b))
	})

	t.Run("accept_gzip", func(t *testing.T) {
		buf := bytes.NewBufferString(body)
		r := httptest.NewRequest("POST", srv.URL, buf)
		r.RequestURI = ""
		r.Header.Set("Accept-Encoding", "gzip")

		resp, err := http.DefaultClient.Do(r)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

		defer resp.Body.Close()

		zr, err := gzip.NewReader(resp.Body)
		require.NoError(t, err)

		b, err := io.ReadAll(zr)
		require.NoError(t, err)

		require.JSONEq(t, successBody, string(b))
	})

	t.Run("broken_gzip", func(t *testing.T) {
		r := httptest.NewRequest("POST", srv.URL, bytes.NewBufferString("not gzip at all"))
		r.RequestURI = ""
		r.Header.Set("Content-Encoding", "gzip")
		r.Header.Set("Accept-Encoding", "0")

		resp, err := http.DefaultClient.Do(r)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusFor(fmt.Errorf("x: %w", skill.ErrInvalidApplication)))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(skill.ErrUnknownRequestType))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(skill.ErrUnsupportedIntent))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("recall: %w", store.ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(store.ErrUnavailable))
}
