package parser

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	InvalidSignatureError   = errors.New("InvalidSignatureError")
	UnsupportedVersionError = errors.New("UnsupportedVersionError")
)

const (
	// "PReg" - the byte sequence 50 52 65 67 read as a little
	// endian uint32.
	REGPOL_SIGNATURE uint32 = 0x67655250

	// Version 1 is the only version that was ever published.
	REGPOL_VERSION uint32 = 1

	REGPOL_HEADER_SIZE = 8
)

// The fixed 8 byte header at the start of every registry policy file.
type REGPOL_HEADER struct {
	b      [8]byte
	Reader io.ReaderAt
	Offset int64
}

func NewREGPOL_HEADER(reader io.ReaderAt, offset int64) *REGPOL_HEADER {
	result := &REGPOL_HEADER{
		Reader: reader,
		Offset: offset,
	}

	_, err := reader.ReadAt(result.b[:], offset)
	if err != nil {
		return result
	}
	return result
}

func (self *REGPOL_HEADER) Size() int {
	return REGPOL_HEADER_SIZE
}

func (self *REGPOL_HEADER) Signature() uint32 {
	return binary.LittleEndian.Uint32(self.b[0:4])
}

func (self *REGPOL_HEADER) Version() uint32 {
	return binary.LittleEndian.Uint32(self.b[4:8])
}

func (self *REGPOL_HEADER) IsValid() error {
	if self.Signature() != REGPOL_SIGNATURE {
		return fmt.Errorf("%w: got %#08x", InvalidSignatureError,
			self.Signature())
	}

	if self.Version() != REGPOL_VERSION {
		return fmt.Errorf("%w: got %v", UnsupportedVersionError,
			self.Version())
	}

	return nil
}

func (self *REGPOL_HEADER) DebugString() string {
	return fmt.Sprintf("REGPOL_HEADER @ %#x:\n  Signature: %#08x\n  Version: %v",
		self.Offset, self.Signature(), self.Version())
}
