package main

import (
	"encoding/hex"
	"io/ioutil"
	"os"

	"www.velocidex.com/golang/regpol/parser"
)

func getDocument(fd *os.File, lenient bool) (*parser.RegPolDocument, error) {
	buf, err := ioutil.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	options := parser.GetDefaultOptions()
	options.AllowMalformedEntries = lenient

	return parser.ParseRegPol(buf, options)
}

func dataPreview(data []byte) string {
	preview := hex.EncodeToString(data)
	if len(preview) > 32 {
		preview = preview[:32] + "..."
	}
	return preview
}
