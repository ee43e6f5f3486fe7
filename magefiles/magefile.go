//go:build mage

// Package main provides build targets for the monstermaker project using Mage.
//
// Usage:
//
//	mage build      Compile monstermaker binary to bin/
//	mage test       Run all tests
//	mage cover      Run tests with a coverage profile in bin/
//	mage fmt        Report files that are not gofmt-formatted
//	mage vet        Run go vet, magefiles included
//	mage lint       Run fmt and vet, then golangci-lint
//	mage check      Run lint then test
//	mage clean      Remove build artifacts
//	mage install    Install monstermaker to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "monstermaker"
	binaryDir  = "bin"
	cmdDir     = "./cmd/monstermaker"
)

// Build compiles the monstermaker binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
