package utf16case

// latin1To returns the simple case mapping of a code unit below 0x100.
// Every Latin-1 simple mapping is 1:1 and agrees with the full Unicode
// mapping after length reconciliation, so the tables stand in for the
// invariant CaseMapper on these units.
func latin1To(u uint16, toUpper bool) uint16 {
	if toUpper {
		return _upper[u]
	}
	return _lower[u]
}

func isASCII(s []uint16) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
