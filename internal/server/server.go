// Package server exposes the Rolodex service operations as a remote call
// surface: a single POST /call endpoint taking {"method": ..., "args": ...}
// and answering with the {"ok": T} | {"err": {kind, message}} envelope.
//
// The dispatcher is a thin adapter over crm.Service. No operation semantics
// live here; requests are handled synchronously, one read-modify-write per
// call.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mesh-intelligence/rolodex/pkg/crm"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Error kinds carried in the wire envelope.
const (
	KindNotFound       = "NotFound"
	KindInvalidPayload = "InvalidPayload"
	KindInternalError  = "InternalError"
)

// Server dispatches remote calls to the service operations.
type Server struct {
	svc *crm.Service
	log *slog.Logger
}

// New builds a Server over the given service. A nil logger falls back to
// slog.Default.
func New(svc *crm.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, log: log}
}

// Router returns the HTTP routes: POST /call for the operation surface and
// GET /healthz for liveness.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/call", s.handleCall)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// callRequest is the wire shape of a remote call.
type callRequest struct {
	Method string          `json:"method"`
	Args   json.RawMessage `json:"args"`
}

// callError is the err arm of the response envelope.
type callError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type okEnvelope struct {
	OK any `json:"ok"`
}

type errEnvelope struct {
	Err callError `json:"err"`
}

// handleCall decodes the envelope, dispatches to the named operation, and
// writes the result. Every response is HTTP 200; failure semantics live in
// the envelope, matching the call/response contract.
func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	callID := uuid.NewString()

	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Warn("malformed call body", "call_id", callID, "error", err)
		s.writeErr(w, callError{Kind: KindInvalidPayload, Message: "malformed request body"})
		return
	}

	result, err := s.dispatch(req.Method, req.Args)
	if err != nil {
		s.log.Info("call failed", "call_id", callID, "method", req.Method, "error", err)
		s.writeErr(w, errorToWire(err))
		return
	}

	s.log.Debug("call ok", "call_id", callID, "method", req.Method)
	s.writeJSON(w, okEnvelope{OK: result})
}

// errorToWire maps a service error onto its envelope kind. Anything outside
// the operation taxonomy becomes InternalError, the reserved kind's one
// legitimate producer.
func errorToWire(err error) callError {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return callError{Kind: KindNotFound, Message: err.Error()}
	case errors.Is(err, types.ErrInvalidPayload):
		return callError{Kind: KindInvalidPayload, Message: err.Error()}
	default:
		return callError{Kind: KindInternalError, Message: err.Error()}
	}
}

func (s *Server) writeErr(w http.ResponseWriter, ce callError) {
	s.writeJSON(w, errEnvelope{Err: ce})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}
