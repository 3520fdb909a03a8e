package broken

// StillHere should be discovered even though a sibling file is unparsable.
func StillHere() {}
