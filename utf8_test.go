package vtengine

import "testing"

func decodeAll(t *testing.T, chunks ...[]byte) []rune {
	t.Helper()
	var d utf8Decoder
	var got []rune
	emit := func(r rune) { got = append(got, r) }
	for _, chunk := range chunks {
		for _, b := range chunk {
			d.feed(b, emit)
		}
	}
	d.flush(emit)
	return got
}

func TestUTF8DecodeASCII(t *testing.T) {
	got := decodeAll(t, []byte("hi"))
	want := []rune{'h', 'i'}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUTF8Decode2Byte(t *testing.T) {
	// U+00E9 'é' is 0xC3 0xA9.
	got := decodeAll(t, []byte{0xC3, 0xA9})
	if len(got) != 1 || got[0] != 0xE9 {
		t.Errorf("got %v, want [é]", got)
	}
}

func TestUTF8Decode3Byte(t *testing.T) {
	// U+4E2D '中' is 0xE4 0xB8 0xAD.
	got := decodeAll(t, []byte{0xE4, 0xB8, 0xAD})
	if len(got) != 1 || got[0] != 0x4E2D {
		t.Errorf("got %v, want [中]", got)
	}
}

func TestUTF8Decode4Byte(t *testing.T) {
	// U+1F600 is 0xF0 0x9F 0x98 0x80.
	got := decodeAll(t, []byte{0xF0, 0x9F, 0x98, 0x80})
	if len(got) != 1 || got[0] != 0x1F600 {
		t.Errorf("got %v, want [U+1F600]", got)
	}
}

func TestUTF8DecodeSplitAcrossFeeds(t *testing.T) {
	got := decodeAll(t, []byte{0xE4}, []byte{0xB8}, []byte{0xAD})
	if len(got) != 1 || got[0] != 0x4E2D {
		t.Errorf("chunked decode: got %v, want [中]", got)
	}
}

func TestUTF8InvalidLeadByteFallsBackToLatin1(t *testing.T) {
	got := decodeAll(t, []byte{0x80, 'A'})
	want := []rune{0x80, 'A'}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUTF8InterruptedSequenceUnwinds(t *testing.T) {
	// A 3-byte lead followed immediately by an ASCII byte: the lead should
	// be emitted as Latin-1, then the ASCII byte processed normally.
	got := decodeAll(t, []byte{0xE4, 'A'})
	want := []rune{0xE4, 'A'}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUTF8FlushDrainsPendingSequence(t *testing.T) {
	var d utf8Decoder
	var got []rune
	emit := func(r rune) { got = append(got, r) }

	d.feed(0xE4, emit)
	d.feed(0xB8, emit)
	if len(got) != 0 {
		t.Fatalf("expected nothing emitted mid-sequence, got %v", got)
	}

	d.flush(emit)
	want := []rune{0xE4, 0xB8}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("flush: got %v, want %v", got, want)
	}
}
