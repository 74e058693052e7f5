package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var (
	debug = false

	REGPOL_DEBUG *bool
)

func Debug(arg interface{}) {
	spew.Dump(arg)
}

type Debugger interface {
	DebugString() string
}

func DebugString(arg interface{}, indent string) string {
	debugger, ok := arg.(Debugger)
	if debug && ok {
		lines := strings.Split(debugger.DebugString(), "\n")
		for idx, line := range lines {
			lines[idx] = indent + line
		}
		return strings.Join(lines, "\n")
	}

	return ""
}

func DebugPrint(fmt_str string, v ...interface{}) {
	if REGPOL_DEBUG == nil {
		// os.Environ() seems very expensive in Go so we cache
		// it.
		for _, x := range os.Environ() {
			if strings.HasPrefix(x, "REGPOL_DEBUG=") {
				value := true
				REGPOL_DEBUG = &value
				break
			}
		}
	}

	if REGPOL_DEBUG == nil {
		value := false
		REGPOL_DEBUG = &value
	}

	if *REGPOL_DEBUG {
		fmt.Printf(fmt_str, v...)
	}
}
