package cmdtest

import (
	"testing"
)

func TestMain(m *testing.M) {
	Main(m)
}

func TestShebangfmt(t *testing.T) {
	Run(t, "testdata/shebangfmt")
}
