// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/crm"
	"github.com/mesh-intelligence/rolodex/pkg/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer a Detach on the returned registry.
func attachBackend() (types.Registry, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openService attaches the backend and builds a record service on top of it.
// The returned closer detaches the backend and must be deferred.
func openService() (*crm.Service, func(), error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	svc, err := crm.New(backend, cliLogger())
	if err != nil {
		backend.Detach()
		return nil, nil, fmt.Errorf("create service: %w", err)
	}

	return svc, func() { backend.Detach() }, nil
}

// cliLogger returns a logger for interactive commands. Only warnings and
// errors reach the terminal so command output stays clean.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// printRecord prints a record as indented JSON when --json is set, otherwise
// prints the given plain line.
func printRecord(record any, plain string) error {
	if flagJSON {
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(plain)
	return nil
}
