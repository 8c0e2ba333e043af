//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs when mage is invoked without arguments.
var Default = Build

// Build compiles the vocadrill binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "vocadrill", "./cmd/vocadrill")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "./cmd/vocadrill")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("vocadrill")
}
