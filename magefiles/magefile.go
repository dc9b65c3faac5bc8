//go:build mage

// Package main provides build targets for the roster project using Mage.
//
// Usage:
//
//	mage build     Compile roster binary to bin/
//	mage test      Run all tests
//	mage cover     Run tests with a coverage profile in bin/
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install roster to GOPATH/bin
//	mage run       Build and start the interactive menu
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "roster"
	binaryDir  = "bin"
	cmdDir     = "./cmd/roster"
	modulePath = "github.com/mesh-intelligence/roster"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the roster binary to bin/, stamping the version from the
// ROSTER_VERSION environment variable when set.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if v := os.Getenv("ROSTER_VERSION"); v != "" {
		args = append(args, "-ldflags", fmt.Sprintf("-X %s/internal/cli.Version=%s", modulePath, v))
	}
	args = append(args, cmdDir)
	return sh.RunV("go", args...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests and writes a coverage profile to bin/coverage.out.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "coverage.out")
	if err := sh.RunV("go", "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func", profile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Run builds the binary and starts the interactive menu on the terminal.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}
