package regpol

/*
  This test suite traps regressions in the policy file decoder by
  driving the actual regpol binary over a sample Registry.pol file and
  comparing the output against a set of golden files. Build the binary
  at the repository root before running these tests:

     go build -o regpol ./bin/
*/

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alecthomas/assert"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/suite"
)

type RegPolTestSuite struct {
	suite.Suite
	binary, extension string
}

func (self *RegPolTestSuite) SetupTest() {
	if runtime.GOOS == "windows" {
		self.extension = ".exe"
	}

	// Search for a valid binary to run.
	binaries, err := filepath.Glob("../regpol" + self.extension)
	assert.NoError(self.T(), err)
	assert.True(self.T(), len(binaries) > 0,
		"Build the regpol binary first")

	self.binary, _ = filepath.Abs(binaries[0])
	fmt.Printf("Found binary %v\n", self.binary)
}

func (self *RegPolTestSuite) TestHeaderCommand() {
	cmd := exec.Command(self.binary, "header", "testdata/sample.pol")
	out, err := cmd.CombinedOutput()
	assert.NoError(self.T(), err, string(out))

	g := goldie.New(self.T())
	g.Assert(self.T(), "header", out)
}

func (self *RegPolTestSuite) TestJSONCommand() {
	cmd := exec.Command(self.binary, "json", "testdata/sample.pol")
	out, err := cmd.CombinedOutput()
	assert.NoError(self.T(), err, string(out))

	g := goldie.New(self.T())
	g.Assert(self.T(), "json", out)
}

func (self *RegPolTestSuite) TestStatCommand() {
	cmd := exec.Command(self.binary, "stat", "testdata/sample.pol")
	out, err := cmd.CombinedOutput()
	assert.NoError(self.T(), err, string(out))

	g := goldie.New(self.T())
	g.Assert(self.T(), "stat", out)
}

func (self *RegPolTestSuite) TestInvalidHeader() {
	cmd := exec.Command(self.binary, "header", "testdata/badsig.pol")
	out, err := cmd.CombinedOutput()
	assert.Error(self.T(), err, string(out))
}

func TestRegPol(t *testing.T) {
	suite.Run(t, &RegPolTestSuite{})
}
