// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/StohnIO/Stohncoin/util/chainhash"
)

// mainNetGenesisHash is the hash of the first block in the block chain for
// the main network, used here as a previous block hash.
var mainNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{
	0xf5, 0x9e, 0x52, 0xd4, 0xda, 0xef, 0x9e, 0x39,
	0x71, 0xe8, 0x80, 0x6a, 0x9c, 0x8f, 0xdd, 0xd8,
	0xea, 0xf7, 0x77, 0x07, 0x4a, 0x10, 0xe6, 0x99,
	0x71, 0x86, 0x6d, 0x4e, 0x39, 0x01, 0x00, 0x00,
})

// mainNetGenesisMerkleRoot is the merkle root of the genesis block for the
// main network.
var mainNetGenesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{
	0xa0, 0x45, 0xfd, 0x98, 0xa4, 0x20, 0x6a, 0x9a,
	0xb7, 0x97, 0xe3, 0x89, 0x39, 0xc7, 0x19, 0x11,
	0x18, 0xc5, 0x83, 0xc5, 0x62, 0x52, 0xb8, 0x20,
	0x58, 0x4d, 0xd8, 0x66, 0xdc, 0x24, 0x9b, 0x11,
})

// baseBlockHdr is used in the various tests as a baseline BlockHeader.
var baseBlockHdr = &BlockHeader{
	Version:    1,
	PrevBlock:  mainNetGenesisHash,
	MerkleRoot: mainNetGenesisMerkleRoot,
	Timestamp:  time.Unix(0x6180f000, 0),
	Bits:       0x1e0fffff,
	Nonce:      0x9962e301,
}

// baseBlockHdrEncoded is the wire encoded bytes of baseBlockHdr.
var baseBlockHdrEncoded = []byte{
	0x01, 0x00, 0x00, 0x00, 0xf5, 0x9e, 0x52, 0xd4,
	0xda, 0xef, 0x9e, 0x39, 0x71, 0xe8, 0x80, 0x6a,
	0x9c, 0x8f, 0xdd, 0xd8, 0xea, 0xf7, 0x77, 0x07,
	0x4a, 0x10, 0xe6, 0x99, 0x71, 0x86, 0x6d, 0x4e,
	0x39, 0x01, 0x00, 0x00, 0xa0, 0x45, 0xfd, 0x98,
	0xa4, 0x20, 0x6a, 0x9a, 0xb7, 0x97, 0xe3, 0x89,
	0x39, 0xc7, 0x19, 0x11, 0x18, 0xc5, 0x83, 0xc5,
	0x62, 0x52, 0xb8, 0x20, 0x58, 0x4d, 0xd8, 0x66,
	0xdc, 0x24, 0x9b, 0x11, 0x00, 0xf0, 0x80, 0x61,
	0xff, 0xff, 0x0f, 0x1e, 0x01, 0xe3, 0x62, 0x99,
}

// TestBlockHeaderWire tests the BlockHeader wire encode and decode for
// various protocol versions.
func TestBlockHeaderWire(t *testing.T) {
	tests := []struct {
		in   *BlockHeader // Data to encode
		out  *BlockHeader // Expected decoded data
		buf  []byte       // Wire encoding
		pver uint32       // Protocol version for wire encoding
	}{
		{baseBlockHdr, baseBlockHdr, baseBlockHdrEncoded, 0},
		{baseBlockHdr, baseBlockHdr, baseBlockHdrEncoded, 1},
	}

	for i, test := range tests {
		// Encode to wire format.
		var buf bytes.Buffer
		err := test.in.StohnEncode(&buf, test.pver)
		if err != nil {
			t.Errorf("StohnEncode #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("StohnEncode #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}

		// Decode the block header from wire format.
		var bh BlockHeader
		rbuf := bytes.NewReader(test.buf)
		err = bh.StohnDecode(rbuf, test.pver)
		if err != nil {
			t.Errorf("StohnDecode #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(&bh, test.out) {
			t.Errorf("StohnDecode #%d\n got: %s want: %s", i,
				spew.Sdump(&bh), spew.Sdump(test.out))
			continue
		}
	}
}

// TestBlockHeaderSerialize tests BlockHeader serialize and deserialize.
func TestBlockHeaderSerialize(t *testing.T) {
	var buf bytes.Buffer
	err := baseBlockHdr.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	if !bytes.Equal(buf.Bytes(), baseBlockHdrEncoded) {
		t.Fatalf("Serialize\n got: %s want: %s",
			spew.Sdump(buf.Bytes()), spew.Sdump(baseBlockHdrEncoded))
	}
	if buf.Len() != baseBlockHdr.SerializeSize() {
		t.Fatalf("SerializeSize: got %d, want %d", baseBlockHdr.SerializeSize(),
			buf.Len())
	}

	var bh BlockHeader
	err = bh.Deserialize(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Deserialize error %v", err)
	}
	if !reflect.DeepEqual(&bh, baseBlockHdr) {
		t.Fatalf("Deserialize\n got: %s want: %s",
			spew.Sdump(&bh), spew.Sdump(baseBlockHdr))
	}
}

// TestBlockHash tests that BlockHash returns the expected double-sha256 of
// the serialized header.
func TestBlockHash(t *testing.T) {
	wantHash, err := chainhash.NewHashFromStr(
		"c636d08d74cf9aaef19b9d2fa885cbd9ca06cf59e0bf52895a79f6b411bdee88")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	blockHash := baseBlockHdr.BlockHash()
	if !blockHash.IsEqual(wantHash) {
		t.Errorf("BlockHash: wrong hash - got %v, want %v",
			blockHash, wantHash)
	}
}
