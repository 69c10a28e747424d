//go:build !windows
// +build !windows

package main

// enableVT is a no-op outside Windows; ANSI escape sequences work natively.
func enableVT() {}
