//go:build cgo
// +build cgo

// Package cwide exposes the C library's wide-character case mapping as a
// test reference. It is only trustworthy for the ASCII subset: towupper
// and towlower are locale dependent above that.
package cwide

/*
#include <locale.h>
#include <wctype.h>

static void cwide_init_locale(void) {
	setlocale(LC_ALL, "en_US.UTF-8");
}
*/
import "C"

// Enabled reports whether the C reference is available in this build.
const Enabled = true

func init() {
	C.cwide_init_locale()
}

func ToUpper(u uint16) uint16 {
	return uint16(C.towupper(C.wint_t(u)))
}

func ToLower(u uint16) uint16 {
	return uint16(C.towlower(C.wint_t(u)))
}
