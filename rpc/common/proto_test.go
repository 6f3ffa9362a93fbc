package common

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type testData struct {
	Value  string `json:"value"`
	Number int    `json:"number"`
}

// TestNewPayload tests that payload construction assigns a unique request id
// and preserves command and data
func TestNewPayload(t *testing.T) {
	p, err := NewPayload("start", testData{Value: "my-process", Number: 42})
	if err != nil {
		t.Fatalf("Failed to create payload: %v", err)
	}

	if p.Command != "start" {
		t.Errorf("Command mismatch: expected 'start', got '%s'", p.Command)
	}
	if p.RequestID == "" {
		t.Error("RequestID was not assigned")
	}

	data, err := DecodeData[testData](p)
	if err != nil {
		t.Fatalf("Failed to decode payload data: %v", err)
	}
	if data.Value != "my-process" || data.Number != 42 {
		t.Errorf("Data mismatch after decode: %+v", data)
	}
}

// TestRequestIDUniqueness tests that every payload gets its own request id
func TestRequestIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		p, err := NewPayload("start", testData{})
		if err != nil {
			t.Fatalf("Failed to create payload %d: %v", i, err)
		}
		if seen[p.RequestID] {
			t.Fatalf("Duplicate request id after %d payloads: %s", i, p.RequestID)
		}
		seen[p.RequestID] = true
	}
}

// TestPayloadRoundTrip tests that a payload survives encoding and decoding
// with all observable fields intact
func TestPayloadRoundTrip(t *testing.T) {
	original, err := NewPayload("stop", testData{Value: "web", Number: 7})
	if err != nil {
		t.Fatalf("Failed to create payload: %v", err)
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to encode payload: %v", err)
	}

	var result Payload
	if err := json.Unmarshal(encoded, &result); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}

	if result.RequestID != original.RequestID {
		t.Errorf("RequestID mismatch: expected '%s', got '%s'", original.RequestID, result.RequestID)
	}
	if result.Command != original.Command {
		t.Errorf("Command mismatch: expected '%s', got '%s'", original.Command, result.Command)
	}

	data, err := DecodeData[testData](&result)
	if err != nil {
		t.Fatalf("Failed to decode data after round trip: %v", err)
	}
	if data.Value != "web" || data.Number != 7 {
		t.Errorf("Data mismatch after round trip: %+v", data)
	}
}

// TestPayloadWireFields tests that the wire document is field-named and
// carries no response-type marker
func TestPayloadWireFields(t *testing.T) {
	p, err := NewPayload("status", testData{Value: "x"})
	if err != nil {
		t.Fatalf("Failed to create payload: %v", err)
	}

	encoded, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to encode payload: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &doc); err != nil {
		t.Fatalf("Failed to decode wire document: %v", err)
	}

	for _, field := range []string{"request_id", "command", "data"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("Wire document missing field '%s'", field)
		}
	}
	if len(doc) != 3 {
		t.Errorf("Wire document has unexpected fields: %s", encoded)
	}
}

// TestResponseFactories tests the invariant that exactly one of data/error is
// populated, determined by success
func TestResponseFactories(t *testing.T) {
	success, err := NewSuccessResponse("req-1", testData{Value: "done", Number: 1})
	if err != nil {
		t.Fatalf("Failed to create success response: %v", err)
	}
	if !success.Success {
		t.Error("Success response has Success=false")
	}
	if success.RequestID != "req-1" {
		t.Errorf("RequestID mismatch: expected 'req-1', got '%s'", success.RequestID)
	}
	if len(success.Data) == 0 {
		t.Error("Success response carries no data")
	}
	if success.Error != "" {
		t.Errorf("Success response carries error: %s", success.Error)
	}

	failure := NewErrorResponse("req-2", "something went wrong")
	if failure.Success {
		t.Error("Error response has Success=true")
	}
	if failure.RequestID != "req-2" {
		t.Errorf("RequestID mismatch: expected 'req-2', got '%s'", failure.RequestID)
	}
	if len(failure.Data) != 0 {
		t.Errorf("Error response carries data: %s", failure.Data)
	}
	if failure.Error != "something went wrong" {
		t.Errorf("Error message mismatch: got '%s'", failure.Error)
	}
}

// TestResponseRoundTrip tests that both response kinds survive encoding and
// decoding with all observable fields intact
func TestResponseRoundTrip(t *testing.T) {
	success, err := NewSuccessResponse("req-3", testData{Value: "ok", Number: 3})
	if err != nil {
		t.Fatalf("Failed to create success response: %v", err)
	}

	responses := []*Response{
		success,
		NewErrorResponse("req-4", "boom"),
	}

	for i, original := range responses {
		encoded, err := json.Marshal(original)
		if err != nil {
			t.Errorf("Failed to encode response %d: %v", i, err)
			continue
		}

		var result Response
		if err := json.Unmarshal(encoded, &result); err != nil {
			t.Errorf("Failed to decode response %d: %v", i, err)
			continue
		}

		if result.RequestID != original.RequestID {
			t.Errorf("Response %d RequestID mismatch: expected '%s', got '%s'", i, original.RequestID, result.RequestID)
		}
		if result.Success != original.Success {
			t.Errorf("Response %d Success mismatch: expected %v, got %v", i, original.Success, result.Success)
		}
		if result.Error != original.Error {
			t.Errorf("Response %d Error mismatch: expected '%s', got '%s'", i, original.Error, result.Error)
		}
		if string(result.Data) != string(original.Data) {
			t.Errorf("Response %d Data mismatch: expected '%s', got '%s'", i, original.Data, result.Data)
		}
	}
}

// TestDecodeResponseDataOnFailure tests that error responses refuse typed decoding
func TestDecodeResponseDataOnFailure(t *testing.T) {
	failure := NewErrorResponse("req-5", "nope")

	if _, err := DecodeResponseData[testData](failure); err == nil {
		t.Error("Expected error decoding data of a failed response, got none")
	}
}

// TestSocketErrorCodes tests code classification and unwrapping
func TestSocketErrorCodes(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrCIo, "dial failed", cause)

	if ErrCodeOf(err) != ErrCIo {
		t.Errorf("ErrCodeOf mismatch: expected Io, got %s", ErrCodeOf(err))
	}
	if !errors.Is(err, cause) {
		t.Error("Wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "Io") {
		t.Errorf("Error string does not name its code: %s", err.Error())
	}

	wrapped := WrapError(ErrCConnectionTimeout, "read timed out", err)
	if ErrCodeOf(wrapped) != ErrCConnectionTimeout {
		t.Errorf("Outermost code should win: got %s", ErrCodeOf(wrapped))
	}

	if ErrCodeOf(errors.New("plain")) != ErrCUnknown {
		t.Error("Plain errors should classify as Unknown")
	}
}
