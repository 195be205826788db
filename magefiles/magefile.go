//go:build mage

// Package main provides build targets for the rolodex project using Mage.
//
// Usage:
//
//	mage build            Compile rolodex binary to bin/
//	mage install          Install rolodex to GOPATH/bin
//	mage clean            Remove build artifacts
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage lint             Run golangci-lint
//	mage fmt              Format all Go source files
//	mage vet              Run go vet
package main
