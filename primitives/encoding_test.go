package primitives

import "testing"

func TestHex256Roundtrip(t *testing.T) {
	cases := []Uint256{
		Uint256FromUint64(0),
		Uint256FromUint64(1),
		MaxUint256(),
	}
	for _, u := range cases {
		enc := EncodeHex256(u)
		if len(enc) != 64 {
			t.Fatalf("EncodeHex256 length = %d, want 64", len(enc))
		}
		got, err := DecodeHex256(enc)
		if err != nil {
			t.Fatalf("DecodeHex256(%q): %v", enc, err)
		}
		if !got.Equal(u) {
			t.Fatalf("roundtrip mismatch: got %s, want %s", got, u)
		}
	}
}

func TestDecodeHex256_WrongLength(t *testing.T) {
	if _, err := DecodeHex256("abcd"); err == nil {
		t.Fatalf("expected error for short hex")
	}
}

func TestDecodeHex256_InvalidChar(t *testing.T) {
	bad := make([]byte, 64)
	for i := range bad {
		bad[i] = '0'
	}
	bad[0] = 'z'
	if _, err := DecodeHex256(string(bad)); err == nil {
		t.Fatalf("expected error for non-hex character")
	}
}

func TestDecimalRoundtrip(t *testing.T) {
	cases := []Uint256{
		Uint256FromUint64(0),
		Uint256FromUint64(42),
		MaxUint256(),
	}
	for _, u := range cases {
		enc := EncodeDecimal(u)
		got, err := DecodeDecimal(enc)
		if err != nil {
			t.Fatalf("DecodeDecimal(%q): %v", enc, err)
		}
		if !got.Equal(u) {
			t.Fatalf("roundtrip mismatch: got %s, want %s", got, u)
		}
	}
}

func TestDecodeDecimal_RejectsLeadingZero(t *testing.T) {
	if _, err := DecodeDecimal("0042"); err == nil {
		t.Fatalf("expected error for leading zero")
	}
}

func TestBase58CheckRoundtrip(t *testing.T) {
	cases := []Uint256{
		Uint256FromUint64(0),
		Uint256FromUint64(12345),
		MaxUint256(),
	}
	for _, u := range cases {
		enc := EncodeBase58Check(u)
		got, err := DecodeBase58Check(enc)
		if err != nil {
			t.Fatalf("DecodeBase58Check(%q): %v", enc, err)
		}
		if !got.Equal(u) {
			t.Fatalf("roundtrip mismatch: got %s, want %s", got, u)
		}
	}
}

func TestDecodeBase58Check_BadChecksum(t *testing.T) {
	enc := EncodeBase58Check(Uint256FromUint64(7))
	// The payload's leading zero bytes encode as a run of '1's, so the
	// tampering is applied to the last character, inside the checksum.
	tampered := []byte(enc)
	last := len(tampered) - 1
	if tampered[last] == '2' {
		tampered[last] = '3'
	} else {
		tampered[last] = '2'
	}
	if _, err := DecodeBase58Check(string(tampered)); err == nil {
		t.Fatalf("expected checksum mismatch to be detected")
	}
}

func TestDecodeBase58Check_InvalidChar(t *testing.T) {
	if _, err := DecodeBase58Check("0OIl"); err == nil {
		t.Fatalf("expected error for characters outside the alphabet")
	}
}

func TestUint256Arithmetic(t *testing.T) {
	a := Uint256FromUint64(10)
	b := Uint256FromUint64(3)
	if got := a.Sub(b); !got.Equal(Uint256FromUint64(7)) {
		t.Fatalf("Sub = %s, want 7", got)
	}
	if got := a.Add(b); !got.Equal(Uint256FromUint64(13)) {
		t.Fatalf("Add = %s, want 13", got)
	}
	if !b.Less(a) {
		t.Fatalf("expected 3 < 10")
	}
	if a.AddOverflows(b) {
		t.Fatalf("10+3 should not overflow")
	}
	if !MaxUint256().AddOverflows(Uint256FromUint64(1)) {
		t.Fatalf("max+1 should overflow")
	}
}

func TestUint256Xor(t *testing.T) {
	a := Uint256FromUint64(0b1010)
	b := Uint256FromUint64(0b0110)
	if got := a.Xor(b); !got.Equal(Uint256FromUint64(0b1100)) {
		t.Fatalf("Xor = %s, want 12", got)
	}
	if !a.Xor(a).IsZero() {
		t.Fatalf("a^a should be zero")
	}
}
