//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the rhymerank binary
func Build() error {
	return sh.RunV("go", "build", "-o", "rhymerank", "./cmd/rhymerank")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/rhymerank")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("rhymerank")
}
