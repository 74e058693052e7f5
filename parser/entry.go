package parser

import (
	"errors"
	"fmt"
	"strings"
)

var MalformedEntryError = errors.New("MalformedEntryError")

// A single registry value extracted from the policy file. Entries are
// fixed up once during decoding and not modified afterwards.
type Entry struct {
	// Path of the registry key this value lives under.
	Key string

	// Name of the value within the key.
	ValueName string

	// Raw registry value type code. The code may be outside the
	// well known range - use RegType() to resolve it.
	Type uint16

	// The data size recorded in the file. This is not checked
	// against len(Data).
	Size uint16

	// Raw value data after fix ups.
	Data []byte
}

func (self *Entry) RegType() *Enumeration {
	return GetRegType(self.Type)
}

func (self *Entry) DebugString() string {
	return fmt.Sprintf(
		"%s\n    value: %s\n    type:  %d %s\n    size:  %d\n    data:  %v",
		self.Key, self.ValueName, self.Type, self.RegType().Name,
		self.Size, self.Data)
}

// Each body consists of five ; separated fields:
// [key;value;type;size;data]
// The leading [ is still attached to the key field at this point.
func parseEntryBody(body string, idx int) (*Entry, error) {
	fields := strings.Split(body, ";")
	if len(fields) != 5 {
		return nil, fmt.Errorf(
			"%w: entry %v has %v fields, expected 5",
			MalformedEntryError, idx, len(fields))
	}

	key := TrimNulls(strings.TrimPrefix(fields[0], "["))
	value_name := TrimNulls(fields[1])

	reg_type, err := fieldToUint16(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: entry %v type field: %v",
			MalformedEntryError, idx, err)
	}

	size, err := fieldToUint16(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: entry %v size field: %v",
			MalformedEntryError, idx, err)
	}

	// REG_SZ data drops its trailing NUL padding before being
	// re-encoded. All other types keep their padding.
	data := fields[4]
	if reg_type == REG_SZ {
		data = TrimNulls(data)
	}

	return &Entry{
		Key:       key,
		ValueName: value_name,
		Type:      reg_type,
		Size:      size,
		Data:      []byte(data),
	}, nil
}

// The type and size fields are not decimal text - the file stores the
// raw 2 byte little endian integer transported through the UTF16
// stream, so each of the two code units carries one byte.
func fieldToUint16(field string) (uint16, error) {
	runes := []rune(field)
	if len(runes) != 2 {
		return 0, fmt.Errorf("%v code units, expected 2", len(runes))
	}

	lo, hi := runes[0], runes[1]
	if lo > 0xff || hi > 0xff {
		return 0, errors.New("code unit does not fit a byte")
	}

	return uint16(lo) | uint16(hi)<<8, nil
}
