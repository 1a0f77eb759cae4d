//go:build !debug
// +build !debug

package ui

const debugChecks = false
