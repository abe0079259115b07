// Package wavdump writes a console's drained audio samples to a WAV file.
// Modeled directly on Gopher2600's wavwriter package: buffer everything in
// memory, write it out in one shot on request. Like that package, this is
// debug/test tooling rather than a host audio sink, hence its home under
// debug/ rather than hardware/.
package wavdump

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/mguler/atari2600/vcserr"
)

// sampleRate matches the TIA audio mixer's fixed output rate.
const sampleRate = 44100

// Write encodes samples (mono, 16-bit PCM, as returned by
// Console.DrainAudio) to a WAV file at path.
func Write(path string, samples []int16) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return vcserr.Errorf("wavdump: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = vcserr.Errorf("wavdump: %v", err)
		}
	}()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return vcserr.Errorf("wavdump: %v", err)
	}
	return enc.Close()
}

// Dumper accumulates samples drained across many frames and writes them all
// at once on Close, the way Gopher2600's WavWriter buffers for the whole
// run before EndMixing. Use this when capturing audio across RunFrame
// calls rather than from one pre-collected slice.
type Dumper struct {
	path    string
	samples []int16
}

// NewDumper creates a Dumper that will write to path on Close.
func NewDumper(path string) *Dumper {
	return &Dumper{path: path}
}

// Append adds samples drained from a console (Console.DrainAudio) to the
// pending buffer.
func (d *Dumper) Append(samples []int16) {
	d.samples = append(d.samples, samples...)
}

// Close writes every sample accumulated so far to the Dumper's path.
func (d *Dumper) Close() error {
	return Write(d.path, d.samples)
}
