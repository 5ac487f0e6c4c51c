package keymapshift

// NextLayout returns the index following matched in snapshot, wrapping around.
func NextLayout(matched int, snapshot Snapshot) (int, bool) {
	if len(snapshot) == 0 || matched < 0 || matched >= len(snapshot) {
		return -1, false
	}
	return (matched + 1) % len(snapshot), true
}
