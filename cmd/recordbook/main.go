//go:build !test

// Code coverage for main is ignored; the programs are tested in internal/app.
package main

func main() {
	Execute()
}
