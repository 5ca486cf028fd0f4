package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

var errTrailingData = errors.New("input longer than the array")

// readRaw fills a with little-endian samples from r, which must hold exactly
// a.Len() samples.
func readRaw(r io.Reader, a *algonrrd.Array) error {
	br := bufio.NewReader(r)

	if err := binary.Read(br, binary.LittleEndian, a.Data); err != nil {
		return fmt.Errorf("reading %d %v samples: %w", a.Len(), a.Type, err)
	}

	if _, err := br.ReadByte(); err != io.EOF {
		if err != nil {
			return err
		}

		return errTrailingData
	}

	return nil
}

// writeRaw writes the samples of a to w in little-endian order.
func writeRaw(w io.Writer, a *algonrrd.Array) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, a.Data); err != nil {
		return err
	}

	return bw.Flush()
}

func readRawFile(path string, t algonrrd.Type, sizes []int) (*algonrrd.Array, error) {
	a, err := algonrrd.NewArray(t, sizes...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := readRaw(f, a); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

func writeRawFile(path string, a *algonrrd.Array) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return writeRaw(f, a)
}
