package pkz

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chronos-tachyon/pkz/internal/testutil"
)

func TestPack(t *testing.T) {
	type testRow struct {
		name          string
		input         string
		expectPayload []byte
		expectBS      byte
	}
	testData := [...]testRow{
		{"AAAB", "AAAB", []byte{0xe0}, 4},
		{"AABC", "AABC", []byte{0x2c}, 6},
		{"aligned", "AAAABBBB", []byte{0x0f}, 8},
		{"two-bytes", "AAAABBBBA", []byte{0xf0, 0x80}, 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			input := []byte(row.input)
			ct := GenerateCodes(mustBuildTree(t, input))
			payload, bs, err := Pack(input, ct)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if !bytes.Equal(row.expectPayload, payload) {
				t.Errorf("wrong payload:\n\texpect: %#v\n\tactual: %#v", row.expectPayload, payload)
			}
			if row.expectBS != bs {
				t.Errorf("wrong BS: expect %d, actual %d", row.expectBS, bs)
			}
		})
	}
}

func TestPack_UnmappedSymbol(t *testing.T) {
	ct := GenerateCodes(mustBuildTree(t, []byte("AB")))
	_, _, err := Pack([]byte("ABC"), ct)
	if !errors.Is(err, ErrUnmappedSymbol) {
		t.Errorf("expected ErrUnmappedSymbol, got %v", err)
	}
}

func TestPack_Empty(t *testing.T) {
	ct := GenerateCodes(mustBuildTree(t, []byte("AB")))
	payload, bs, err := Pack(nil, ct)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(payload) != 0 || bs != 8 {
		t.Errorf("expected empty payload with BS 8, got %d bytes with BS %d", len(payload), bs)
	}
}

func TestPack_BitAccounting(t *testing.T) {
	r := testutil.NewRand(3)
	inputs := [][]byte{
		[]byte("hello, world"),
		testutil.Fibonacci(12),
		r.Bytes(777),
		r.Skewed(5000, 30),
	}
	for i, input := range inputs {
		ft := CountFrequencies(input)
		ct := GenerateCodes(mustBuildTree(t, input))
		payload, bs, err := Pack(input, ct)
		if err != nil {
			t.Fatalf("input %d: Pack failed: %v", i, err)
		}
		if bs < 1 || bs > 8 {
			t.Errorf("input %d: BS %d out of range", i, bs)
		}
		actualBits := uint64(len(payload))*8 - uint64(8-bs)
		if expectBits := ct.EncodedBits(&ft); actualBits != expectBits {
			t.Errorf("input %d: expected %d bits, got %d", i, expectBits, actualBits)
		}
	}
}
