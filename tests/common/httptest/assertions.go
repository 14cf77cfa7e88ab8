//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertEnvelope checks the success envelope and decodes its data field.
func AssertEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetData any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Detail string          `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.Equal(t, "success", envelope.Status)

	if targetData != nil && len(envelope.Data) > 0 {
		err := json.Unmarshal(envelope.Data, targetData)
		assert.NoError(t, err, "Failed to decode envelope data")
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var envelope struct {
		Status string `json:"status"`
		Detail string `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String())) {
		return
	}
	assert.Equal(t, "error", envelope.Status)

	if expectedDetail != "" {
		assert.Contains(t, envelope.Detail, expectedDetail,
			"Response detail doesn't contain expected text")
	}
}

// AssertBareArray decodes a plain-array response (offerings list).
func AssertBareArray(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	err := json.Unmarshal(w.Body.Bytes(), target)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode array response: %s", w.Body.String()))
}
