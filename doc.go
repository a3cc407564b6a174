// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package utf16case converts UTF-16 encoded text between upper and lower
// case into a caller-supplied, fixed-capacity destination buffer.
//
// Case mapping is locale-aware and delegated to [golang.org/x/text/cases].
// A mapped segment whose encoded length would differ from the original is
// emitted unchanged instead, so conversion never changes the code-unit
// length of a string and a destination sized to the source always
// suffices. Unpaired surrogates are copied through, never dropped.
package utf16case

// BUG(cvieth): Length-changing case mappings are suppressed by the
// anti-expansion rule: "ß" stays "ß" instead of becoming "SS", and the
// invariant lowercase of "İ" stays "İ" instead of "i" plus a combining
// dot. Locale-aware 1:1 mappings (Turkish "i" to "İ") are unaffected.
