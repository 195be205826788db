// HTTP dispatch integration tests exercising the call envelope end to end
// against a real backend.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mesh-intelligence/rolodex/internal/server"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

type wireEnvelope struct {
	OK  json.RawMessage `json:"ok"`
	Err *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"err"`
}

// call posts a method envelope and decodes the response.
func call(t *testing.T, url, method string, args any) wireEnvelope {
	t.Helper()
	body := map[string]any{"method": method}
	if args != nil {
		body["args"] = args
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal call: %v", err)
	}
	resp, err := http.Post(url+"/call", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /call: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var env wireEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestCallSurfaceEndToEnd(t *testing.T) {
	svc := setupService(t)
	ts := httptest.NewServer(server.New(svc, nil).Router())
	t.Cleanup(ts.Close)

	// addCustomer returns the created record.
	env := call(t, ts.URL, "addCustomer", map[string]any{
		"payload": types.CustomerPayload{Name: "Margaret", Company: "MIT"},
	})
	if env.Err != nil {
		t.Fatalf("addCustomer err = %+v", env.Err)
	}
	var created types.Customer
	if err := json.Unmarshal(env.OK, &created); err != nil {
		t.Fatalf("unmarshal customer: %v", err)
	}

	// addInteraction embeds a copy in the customer record.
	env = call(t, ts.URL, "addInteraction", map[string]any{
		"customer_id": created.CustomerID,
		"payload":     types.InteractionPayload{Kind: "meeting", Status: "Open"},
	})
	if env.Err != nil {
		t.Fatalf("addInteraction err = %+v", env.Err)
	}

	env = call(t, ts.URL, "getCustomer", map[string]any{"id": created.CustomerID})
	if env.Err != nil {
		t.Fatalf("getCustomer err = %+v", env.Err)
	}
	var fetched types.Customer
	if err := json.Unmarshal(env.OK, &fetched); err != nil {
		t.Fatalf("unmarshal customer: %v", err)
	}
	if len(fetched.Interactions) != 1 {
		t.Errorf("embedded interactions = %d, want 1", len(fetched.Interactions))
	}

	// Errors ride the envelope, never the HTTP status.
	env = call(t, ts.URL, "getCustomer", map[string]any{"id": "not-an-id"})
	if env.Err == nil || env.Err.Kind != "InvalidPayload" {
		t.Errorf("malformed id err = %+v, want InvalidPayload", env.Err)
	}

	env = call(t, ts.URL, "getCustomer", map[string]any{"id": fmt.Sprintf("%08x-0000-4000-8000-000000000000", 0)})
	if env.Err == nil || env.Err.Kind != "NotFound" {
		t.Errorf("absent id err = %+v, want NotFound", env.Err)
	}

	// Swallowing list queries answer an empty list for any input.
	env = call(t, ts.URL, "listCustomerInteractions", map[string]any{"customer_id": "garbage"})
	if env.Err != nil {
		t.Fatalf("listCustomerInteractions err = %+v, want empty ok", env.Err)
	}
	var interactions []types.Interaction
	if err := json.Unmarshal(env.OK, &interactions); err != nil {
		t.Fatalf("unmarshal interactions: %v", err)
	}
	if len(interactions) != 0 {
		t.Errorf("interactions = %+v, want empty", interactions)
	}
}
