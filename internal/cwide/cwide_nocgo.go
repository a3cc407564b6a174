//go:build !cgo
// +build !cgo

package cwide

// Enabled reports whether the C reference is available in this build.
const Enabled = false

func ToUpper(u uint16) uint16 { return u }

func ToLower(u uint16) uint16 { return u }
