package parser

import "fmt"

type Enumeration struct {
	Value uint64
	Name  string
}

func (self Enumeration) DebugString() string {
	return fmt.Sprintf("%s (%d)", self.Name, self.Value)
}

// Registry value types as defined by the Windows registry API.
const (
	REG_NONE                       uint16 = 0
	REG_SZ                         uint16 = 1
	REG_EXPAND_SZ                  uint16 = 2
	REG_BINARY                     uint16 = 3
	REG_DWORD                      uint16 = 4
	REG_DWORD_BIG_ENDIAN           uint16 = 5
	REG_LINK                       uint16 = 6
	REG_MULTI_SZ                   uint16 = 7
	REG_RESOURCE_LIST              uint16 = 8
	REG_FULL_RESOURCE_DESCRIPTOR   uint16 = 9
	REG_RESOURCE_REQUIREMENTS_LIST uint16 = 10
	REG_QWORD                      uint16 = 11
)

func GetRegType(value uint16) *Enumeration {
	name := "Unknown"
	switch value {

	case REG_NONE:
		name = "REG_NONE"

	case REG_SZ:
		name = "REG_SZ"

	case REG_EXPAND_SZ:
		name = "REG_EXPAND_SZ"

	case REG_BINARY:
		name = "REG_BINARY"

	case REG_DWORD:
		name = "REG_DWORD"

	case REG_DWORD_BIG_ENDIAN:
		name = "REG_DWORD_BIG_ENDIAN"

	case REG_LINK:
		name = "REG_LINK"

	case REG_MULTI_SZ:
		name = "REG_MULTI_SZ"

	case REG_RESOURCE_LIST:
		name = "REG_RESOURCE_LIST"

	case REG_FULL_RESOURCE_DESCRIPTOR:
		name = "REG_FULL_RESOURCE_DESCRIPTOR"

	case REG_RESOURCE_REQUIREMENTS_LIST:
		name = "REG_RESOURCE_REQUIREMENTS_LIST"

	case REG_QWORD:
		name = "REG_QWORD"
	}
	return &Enumeration{Value: uint64(value), Name: name}
}
