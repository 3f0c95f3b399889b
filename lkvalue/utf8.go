package lkvalue

// utf8BuffSize is large enough for the longest sequence UTF8Escape can
// produce (6 bytes for a codepoint up to 0x7FFFFFFF under the original
// unrestricted UTF-8 encoding; UTF8Escape does not check the Unicode range,
// so code points above 0x10FFFF also encode, and values above 0x7FFFFFFF
// overrun this buffer; sized like lobject.c's UTF8BUFFSZ).
const utf8BuffSize = 6

// UTF8Escape encodes codepoint x as UTF-8, filling buf from the end
// (lobject.c: luaO_utf8esc) and returning the number of bytes written,
// which are the trailing n bytes of buf. Callers interested in the bytes
// themselves should slice buf[len(buf)-n:].
func UTF8Escape(buf []byte, x uint64) int {
	n := 1
	if x < 0x80 {
		buf[len(buf)-1] = byte(x)
		return n
	}
	mfb := uint64(0x3f)
	for {
		buf[len(buf)-n] = byte(0x80 | (x & 0x3f))
		n++
		x >>= 6
		mfb >>= 1
		if x <= mfb {
			break
		}
	}
	buf[len(buf)-n] = byte((^mfb << 1) | x)
	return n
}

// UTF8EscapeString is the convenience form returning the encoded bytes
// directly rather than requiring the caller to manage a shared buffer.
func UTF8EscapeString(x uint64) []byte {
	buf := make([]byte, utf8BuffSize)
	n := UTF8Escape(buf, x)
	return buf[len(buf)-n:]
}
