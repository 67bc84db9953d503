package trie

// Key reconstructs the byte string implied by the current cursor
// position into buf, zero-terminates it, and returns the key's length
// excluding the terminator. If buf cannot hold the key plus its
// terminator, only the first len(buf) bytes are written, the last of
// them is overwritten with the terminator, and the returned length still
// counts every byte of the key, so it exceeds what buf holds.
func (t *Trie) Key(buf []byte) int {
	n := 0

	for i := 0; i < t.cur.level; i++ {
		f := t.cur.frames[i]

		switch f.node.tag() {
		case tagRadix:
			b := byte(f.slot)
			if b == 0 {
				continue
			}
			if n < len(buf) {
				buf[n] = b
			}
			n++

		case tagSpan:
			s := t.arena.spanAt(f.node)
			end := int(s.n)
			if zi := s.zeroIndex(); zi >= 0 {
				end = zi
			}
			for j := 0; j < end; j++ {
				if n < len(buf) {
					buf[n] = s.buf[j]
				}
				n++
			}

		default:
			lin := t.arena.lin(f.node)
			width := stride(f.off)

			var tmp [wordSize]byte
			storeStride(tmp[:width], f.off, lin.key(f.slot))

			for j := 0; j < width; j++ {
				if tmp[j] == 0 {
					break
				}
				if n < len(buf) {
					buf[n] = tmp[j]
				}
				n++
			}
		}
	}

	if len(buf) > 0 {
		if n < len(buf) {
			buf[n] = 0
		} else {
			buf[len(buf)-1] = 0
		}
	}

	return n
}
