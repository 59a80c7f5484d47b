package pkz

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chronos-tachyon/pkz/internal/testutil"
)

func makeTestContainer() Container {
	return Container{
		NumInternal:     1,
		Tree:            testutil.MustDecodeHex("000001420141"),
		SignificantBits: 4,
		Payload:         []byte{0xe0},
	}
}

func TestContainer_MarshalBinary(t *testing.T) {
	c := makeTestContainer()
	actual, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	expect := testutil.MustDecodeHex("0100000142014104e0")
	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", expect, actual)
	}
	if len(actual) != c.Size() {
		t.Errorf("expected Size %d, got %d", len(actual), c.Size())
	}
}

func TestContainer_MarshalBinary_Invalid(t *testing.T) {
	type testRow struct {
		name   string
		mutate func(c *Container)
	}
	testData := [...]testRow{
		{"NF-too-large", func(c *Container) {
			c.NumInternal = MaxInternalNodes + 1
			c.Tree = make([]byte, TreeSize(c.NumInternal))
		}},
		{"NF-negative", func(c *Container) { c.NumInternal = -1 }},
		{"tree-size-mismatch", func(c *Container) { c.Tree = c.Tree[:4] }},
		{"BS-zero", func(c *Container) { c.SignificantBits = 0 }},
		{"BS-nine", func(c *Container) { c.SignificantBits = 9 }},
		{"empty-payload", func(c *Container) { c.Payload = nil }},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			c := makeTestContainer()
			row.mutate(&c)
			out, err := c.MarshalBinary()
			if !errors.Is(err, ErrMalformedContainer) {
				t.Errorf("expected ErrMalformedContainer, got %v", err)
			}
			if out != nil {
				t.Errorf("expected no output, got %x", out)
			}
		})
	}
}

func TestParseContainer(t *testing.T) {
	c, err := ParseContainer(testutil.MustDecodeHex("0200000141000001420143062c"))
	if err != nil {
		t.Fatalf("ParseContainer failed: %v", err)
	}
	expect := &Container{
		NumInternal:     2,
		Tree:            testutil.MustDecodeHex("00000141000001420143"),
		SignificantBits: 6,
		Payload:         []byte{0x2c},
	}
	if diff := cmp.Diff(expect, c); diff != "" {
		t.Errorf("wrong container (-expect +actual):\n%s", diff)
	}
}

func TestParseContainer_Malformed(t *testing.T) {
	type testRow struct {
		name  string
		input string
	}
	testData := [...]testRow{
		{"empty", ""},
		{"NF-only", "01"},
		{"truncated-tree", "0100000142"},
		{"missing-BS", "01000001420141"},
		{"missing-payload", "01000001420141" + "04"},
		{"BS-zero", "01000001420141" + "00e0"},
		{"BS-nine", "01000001420141" + "09e0"},
		{"NF-overstated", "ff00000142014104e0"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ParseContainer(testutil.MustDecodeHex(row.input))
			if !errors.Is(err, ErrMalformedContainer) {
				t.Errorf("expected ErrMalformedContainer, got %v", err)
			}
		})
	}
}
