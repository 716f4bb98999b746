package protocol

import (
	"encoding/json"
	"testing"
)

func TestJSONRPCRequest_Parsing(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(*testing.T, *JSONRPCRequest)
	}{
		{
			name:    "valid request with numeric id",
			input:   `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_file_text"}}`,
			wantErr: false,
			check: func(t *testing.T, req *JSONRPCRequest) {
				if req.JSONRPC != "2.0" {
					t.Errorf("Expected jsonrpc 2.0, got %s", req.JSONRPC)
				}
				if req.Method != "tools/call" {
					t.Errorf("Expected method tools/call, got %s", req.Method)
				}
				if req.IsNotification() {
					t.Error("Expected IsNotification to be false")
				}
			},
		},
		{
			name:    "notification without id",
			input:   `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			wantErr: false,
			check: func(t *testing.T, req *JSONRPCRequest) {
				if !req.IsNotification() {
					t.Error("Expected IsNotification to be true")
				}
			},
		},
		{
			name:    "request with string id",
			input:   `{"jsonrpc":"2.0","id":"req-42","method":"ping"}`,
			wantErr: false,
			check: func(t *testing.T, req *JSONRPCRequest) {
				if req.IsNotification() {
					t.Error("Expected IsNotification to be false")
				}
				if string(req.ID) != `"req-42"` {
					t.Errorf("Expected raw id %q, got %s", `"req-42"`, req.ID)
				}
			},
		},
		{
			name:    "null id still counts as an id",
			input:   `{"jsonrpc":"2.0","id":null,"method":"ping"}`,
			wantErr: false,
			check: func(t *testing.T, req *JSONRPCRequest) {
				if req.IsNotification() {
					t.Error("Expected IsNotification to be false for null id")
				}
			},
		},
		{
			name:    "malformed json",
			input:   `{"jsonrpc":"2.0","method":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req JSONRPCRequest
			err := json.Unmarshal([]byte(tt.input), &req)

			if (err != nil) != tt.wantErr {
				t.Errorf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && tt.check != nil {
				tt.check(t, &req)
			}
		})
	}
}

func TestNewResultResponse(t *testing.T) {
	resp, err := NewResultResponse(json.RawMessage(`3`), map[string]string{"status": "ok"})
	if err != nil {
		t.Fatalf("NewResultResponse() error = %v", err)
	}

	got, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"jsonrpc":"2.0","id":3,"result":{"status":"ok"}}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestNewResultResponse_UnmarshalableResult(t *testing.T) {
	if _, err := NewResultResponse(json.RawMessage(`1`), func() {}); err == nil {
		t.Error("Expected error for unserializable result")
	}
}

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		message  string
		wantJSON string
	}{
		{
			name:     "method not found",
			code:     MethodNotFound,
			message:  "method not found: resources/list",
			wantJSON: `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found: resources/list"}}`,
		},
		{
			name:     "invalid request",
			code:     InvalidRequest,
			message:  "invalid request",
			wantJSON: `{"jsonrpc":"2.0","id":1,"error":{"code":-32600,"message":"invalid request"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewErrorResponse(json.RawMessage(`1`), tt.code, tt.message, nil)

			got, err := json.Marshal(resp)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestJSONRPCErrorCodes(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ParseError, "ParseError"},
		{InvalidRequest, "InvalidRequest"},
		{MethodNotFound, "MethodNotFound"},
		{InvalidParams, "InvalidParams"},
		{InternalError, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code >= 0 {
				t.Errorf("Error code %d should be negative", tt.code)
			}
		})
	}
}
