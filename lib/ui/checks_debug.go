//go:build debug
// +build debug

package ui

// Internal consistency faults panic in debug builds.
const debugChecks = true
