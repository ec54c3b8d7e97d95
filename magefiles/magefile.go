//go:build mage

// Package main contains Mage build targets for disemvowel developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "disemvowel"
	cmdPkg  = "./cmd/disemvowel"
)

// Default runs when mage is invoked without a target.
var Default = Build

// Build compiles the CLI binary into bin/, stamping the version from
// $VERSION (default "dev").
func Build() error {
	mg.Deps(Vet)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Fuzz runs the vowel filter fuzz target for $FUZZTIME (default 30s).
func Fuzz() error {
	fuzzTime := os.Getenv("FUZZTIME")
	if fuzzTime == "" {
		fuzzTime = "30s"
	}
	return sh.RunV("go", "test", "-run=^$", "-fuzz=FuzzFilter", "-fuzztime="+fuzzTime, "./internal/disemvowel")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output.
func Clean() error {
	fmt.Println("Removing", binDir)
	return sh.Rm(binDir)
}
