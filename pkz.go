package pkz

import (
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"
)

// Compress encodes data into a container.
//
// It fails with ErrEmptyInput for empty data and with ErrDegenerateAlphabet
// when data consists of a single repeated byte value.
//
func Compress(data []byte) ([]byte, error) {
	ft := CountFrequencies(data)
	switch ft.Distinct() {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return nil, fmt.Errorf("%w: %d copies of byte %d", ErrDegenerateAlphabet, len(data), data[0])
	}
	debugDump("frequencies", ft.Dump)

	var e Encoder
	if err := e.Init(&ft); err != nil {
		return nil, err
	}
	debugDump("tree", e.Tree().Dump)
	debugDump("codes", e.Codes().Dump)

	tree, err := e.Tree().MarshalBinary()
	if err != nil {
		return nil, err
	}
	payload, bs, err := e.Pack(data)
	if err != nil {
		return nil, err
	}

	c := Container{
		NumInternal:     e.Tree().NumInternal(),
		Tree:            tree,
		SignificantBits: bs,
		Payload:         payload,
	}
	out, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	log.Debugf("compressed %d bytes into %d bytes: NF=%d BS=%d", len(data), len(out), c.NumInternal, bs)
	return out, nil
}

// Decompress decodes a container produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	var t Tree
	if err := t.UnmarshalBinary(c.Tree); err != nil {
		return nil, err
	}
	debugDump("tree", t.Dump)

	var d Decoder
	if err := d.Init(&t); err != nil {
		return nil, err
	}
	debugDump("decoder", d.Dump)
	return d.Decode(c.Payload, c.SignificantBits)
}

func debugDump(what string, dump func(io.Writer) (int64, error)) {
	if !log.IsEnabledFor(logging.DEBUG) {
		return
	}
	var sb strings.Builder
	_, _ = dump(&sb)
	log.Debugf("%s: %s", what, sb.String())
}
