// Implement some easy APIs.
package parser

import (
	"io"
	"io/ioutil"
	"os"
)

// Read the entire input and decode it with default options. The
// format has no streaming mode - the file is always fully buffered
// before decoding starts.
func GetRegPolDocument(reader io.Reader) (*RegPolDocument, error) {
	buf, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return ParseRegPol(buf, GetDefaultOptions())
}

func OpenRegPolFile(filename string) (*RegPolDocument, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return GetRegPolDocument(fd)
}
