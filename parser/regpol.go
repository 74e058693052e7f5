package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Velocidex/ordereddict"
)

// A fully decoded registry policy file. Entries appear in file order
// and are never merged or deduplicated.
type RegPolDocument struct {
	Header  *REGPOL_HEADER
	Entries []*Entry

	// Per entry failures collected when AllowMalformedEntries is
	// set. Always empty on a strict decode.
	Errors []error

	options Options
}

// Decode a fully buffered registry policy file. The decode either
// produces the complete document or fails - there is no partial
// result unless AllowMalformedEntries is set.
func ParseRegPol(buf []byte, options Options) (*RegPolDocument, error) {
	if len(buf) < REGPOL_HEADER_SIZE {
		return nil, fmt.Errorf("%w: file too short (%v bytes)",
			InvalidSignatureError, len(buf))
	}

	header := NewREGPOL_HEADER(bytes.NewReader(buf), 0)
	err := header.IsValid()
	if err != nil {
		return nil, err
	}

	body, err := UTF16ToString(buf[REGPOL_HEADER_SIZE:])
	if err != nil {
		return nil, err
	}

	result := &RegPolDocument{
		Header:  header,
		options: options,
	}

	// The body is a concatenation of [key;value;type;size;data]
	// records. Splitting on the closing bracket leaves each
	// fragment carrying its leading [ and an empty trailing
	// fragment after the final record.
	idx := 0
	for _, fragment := range strings.Split(body, "]") {
		if fragment == "" {
			continue
		}

		entry, err := parseEntryBody(fragment, idx)
		if err != nil {
			if options.AllowMalformedEntries {
				result.Errors = append(result.Errors, err)
				idx++
				continue
			}
			return nil, err
		}

		DebugPrint("Decoded entry %v: %v\n", idx, entry.Key)
		result.Entries = append(result.Entries, entry)
		idx++
	}

	return result, nil
}

// Summary counters over the decoded document. Type counts appear in
// file order of first occurrence.
func (self *RegPolDocument) Stats() *ordereddict.Dict {
	type_counts := ordereddict.NewDict()
	for _, entry := range self.Entries {
		name := entry.RegType().Name

		count := int64(0)
		count_any, pres := type_counts.Get(name)
		if pres {
			count = count_any.(int64)
		}
		type_counts.Set(name, count+1)
	}

	return ordereddict.NewDict().
		Set("EntryCount", int64(len(self.Entries))).
		Set("ErrorCount", int64(len(self.Errors))).
		Set("TypeCounts", type_counts)
}
