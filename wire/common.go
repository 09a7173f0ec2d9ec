// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/StohnIO/Stohncoin/util/chainhash"
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// uint32Time represents a unix timestamp encoded with a uint32. It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var buf [8]byte

	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *int32:
		b := buf[:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(b))
		return nil

	case *uint32:
		b := buf[:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = littleEndian.Uint32(b)
		return nil

	case *int64:
		b := buf[:8]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(b))
		return nil

	case *uint64:
		b := buf[:8]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = littleEndian.Uint64(b)
		return nil

	// Unix timestamp encoded as a uint32.
	case *uint32Time:
		b := buf[:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(littleEndian.Uint32(b)), 0))
		return nil

	case *chainhash.Hash:
		if _, err := io.ReadFull(r, e[:]); err != nil {
			return err
		}
		return nil

	case *StohnNet:
		b := buf[:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = StohnNet(littleEndian.Uint32(b))
		return nil
	}

	return errors.Errorf("readElement: unsupported element type %T", element)
}

// readElements reads multiple items from r. It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	var buf [8]byte

	switch e := element.(type) {
	case int32:
		b := buf[:4]
		littleEndian.PutUint32(b, uint32(e))
		_, err := w.Write(b)
		return err

	case uint32:
		b := buf[:4]
		littleEndian.PutUint32(b, e)
		_, err := w.Write(b)
		return err

	case int64:
		b := buf[:8]
		littleEndian.PutUint64(b, uint64(e))
		_, err := w.Write(b)
		return err

	case uint64:
		b := buf[:8]
		littleEndian.PutUint64(b, e)
		_, err := w.Write(b)
		return err

	// Unix timestamp encoded as a uint32.
	case uint32Time:
		b := buf[:4]
		littleEndian.PutUint32(b, uint32(time.Time(e).Unix()))
		_, err := w.Write(b)
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case StohnNet:
		b := buf[:4]
		littleEndian.PutUint32(b, uint32(e))
		_, err := w.Write(b)
		return err
	}

	return errors.Errorf("writeElement: unsupported element type %T", element)
}

// writeElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}
