package common

// WipeByteArray zeroes buf in place. It is used to clear password bytes
// as soon as they are no longer needed. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
