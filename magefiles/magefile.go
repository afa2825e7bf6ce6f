//go:build mage

// Package main provides build targets for keypadchain using Mage.
//
// Usage:
//
//	mage build      Compile the keypadchain binary to bin/
//	mage test       Run all tests with the race detector
//	mage bench      Run benchmarks for paths and chain
//	mage lint       Run golangci-lint
//	mage sample     Price the sample codes at depth 2 and 25
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "keypadchain"
	binaryDir  = "bin"
	cmdDir     = "./cmd/keypadchain"
	sampleFile = "testdata/codes.txt"
)

// Build compiles the keypadchain binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the path and chain benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./paths/...", "./chain/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Sample builds the binary and prices the sample codes at depth 2 and 25.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for _, depth := range []string{"2", "25"} {
		if err := sh.RunV(bin, "solve", sampleFile, "--depth", depth); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
