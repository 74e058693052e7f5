package parser

import "encoding/hex"

// This file defines a rendering model for policy entries.

// Describe a single policy entry for serialized output. Data is hex
// encoded so binary values survive JSON.
type EntryInfo struct {
	Key       string
	ValueName string
	Type      uint16
	TypeName  string
	Size      uint16
	DataLen   int
	Data      string
}

func ModelEntry(entry *Entry) *EntryInfo {
	return &EntryInfo{
		Key:       entry.Key,
		ValueName: entry.ValueName,
		Type:      entry.Type,
		TypeName:  entry.RegType().Name,
		Size:      entry.Size,
		DataLen:   len(entry.Data),
		Data:      hex.EncodeToString(entry.Data),
	}
}

func (self *RegPolDocument) ModelEntries() []*EntryInfo {
	result := make([]*EntryInfo, 0, len(self.Entries))
	for _, entry := range self.Entries {
		result = append(result, ModelEntry(entry))
	}
	return result
}
