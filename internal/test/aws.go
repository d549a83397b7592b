package test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// AWSConfig returns an SDK config with static credentials, a fixed region and no retries,
// for clients pointed at a server from NewHttpServerWithHandlers.
func AWSConfig(endpoint string) aws.Config {
	return aws.Config{
		Region:           "eu-west-1",
		BaseEndpoint:     aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		RetryMaxAttempts: 1,
	}
}

// JSONRequest is the decoded body and target of an awsJson1.1 protocol request.
type JSONRequest struct {
	Target string
	Body   map[string]any
}

// DecodeJSONRequest reads an awsJson1.1 protocol request as sent by the SDK.
func DecodeJSONRequest(t *testing.T, r *http.Request) JSONRequest {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("reading request body: %v", err)
	}

	req := JSONRequest{Target: r.Header.Get("X-Amz-Target"), Body: map[string]any{}}
	if err := json.Unmarshal(body, &req.Body); err != nil {
		t.Fatalf("decoding request body %q: %v", body, err)
	}
	return req
}

// WriteJSONResponse writes an awsJson1.1 protocol response.
func WriteJSONResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
