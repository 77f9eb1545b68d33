// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

// alphabet is RFC 4648's "base32hex" alphabet, lowercased, with no padding
// character — digits 0-9 then letters a-v. This is the encoding the teacher's
// hash package uses for its string form.
const alphabet = "0123456789abcdefghijklmnopqrstuv"

var reverseAlphabet = func() [256]int8 {
	var rev [256]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		rev[alphabet[i]] = int8(i)
	}
	return rev
}()

// encode renders data (ByteLen bytes) as a base32 string of exactly
// StringLen characters, treating data as one big-endian unsigned integer.
func encode(data []byte) string {
	out := make([]byte, StringLen)
	pos := StringLen - 1

	bitBuf := uint64(0)
	bitCount := uint(0)
	for i := len(data) - 1; i >= 0; i-- {
		bitBuf |= uint64(data[i]) << bitCount
		bitCount += 8
		for bitCount >= 5 {
			out[pos] = alphabet[bitBuf&0x1f]
			pos--
			bitBuf >>= 5
			bitCount -= 5
		}
	}
	if bitCount > 0 {
		out[pos] = alphabet[bitBuf&0x1f]
		pos--
	}
	for pos >= 0 {
		out[pos] = alphabet[0]
		pos--
	}
	return string(out)
}

// decode parses s (StringLen characters) back into ByteLen bytes. It reports
// ok=false if s contains characters outside the alphabet, or encodes more
// bits than ByteLen bytes can hold.
func decode(s string) (data []byte, ok bool) {
	if len(s) != StringLen {
		return nil, false
	}

	out := make([]byte, ByteLen)
	pos := ByteLen - 1

	bitBuf := uint64(0)
	bitCount := uint(0)
	for i := len(s) - 1; i >= 0; i-- {
		v := reverseAlphabet[s[i]]
		if v < 0 {
			return nil, false
		}
		bitBuf |= uint64(v) << bitCount
		bitCount += 5
		for bitCount >= 8 {
			if pos < 0 {
				// Overflow: more significant bits than ByteLen bytes can
				// hold; only valid if they're all zero padding.
				if byte(bitBuf) != 0 {
					return nil, false
				}
			} else {
				out[pos] = byte(bitBuf)
				pos--
			}
			bitBuf >>= 8
			bitCount -= 8
		}
	}
	if bitBuf != 0 {
		return nil, false
	}
	return out, true
}
