package wavdump_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mguler/atari2600/debug/wavdump"
	"github.com/mguler/atari2600/internal/vcstest"
)

func TestWriteProducesNonEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []int16{0, 100, -100, 32767, -32768}

	vcstest.ExpectSuccess(t, wavdump.Write(path, samples))

	info, err := os.Stat(path)
	vcstest.ExpectSuccess(t, err)
	vcstest.ExpectTrue(t, info.Size() > 0, "wav file is non-empty")
}

func TestDumperAccumulatesAcrossAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.wav")
	d := wavdump.NewDumper(path)

	d.Append([]int16{1, 2, 3})
	d.Append([]int16{4, 5})

	vcstest.ExpectSuccess(t, d.Close())

	info, err := os.Stat(path)
	vcstest.ExpectSuccess(t, err)
	vcstest.ExpectTrue(t, info.Size() > 0, "accumulated wav file is non-empty")
}
