package audioconv

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

const (
	FormatWAV    = "wav"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type Options struct {
	// MaxSamples truncates the decoded clip, 0 keeps everything
	MaxSamples int
	// SampleRate resamples the clip, 0 keeps the source rate
	SampleRate int
}

// Clip is mono audio normalized to [-1, 1].
type Clip struct {
	Samples    []float32
	SampleRate int
	Channels   int // channel count of the source before downmix
	Format     string
}

func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// FormatFromPath guesses the container from the file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV
	case ".mp3":
		return FormatMP3
	case ".ogg", ".oga":
		return FormatVorbis
	}
	return ""
}

func DecodeFile(ctx context.Context, path string, opt Options) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, err
	}
	defer f.Close()

	format := FormatFromPath(path)
	if format == "" {
		format, err = sniff(f)
		if err != nil {
			return Clip{}, err
		}
	}
	return Decode(ctx, f, format, opt)
}

func Decode(_ context.Context, r io.ReadSeeker, format string, opt Options) (Clip, error) {
	var (
		clip Clip
		err  error
	)
	switch format {
	case FormatWAV:
		clip, err = decodeWAV(r)
	case FormatMP3:
		clip, err = decodeMP3(r)
	case FormatVorbis:
		clip, err = decodeVorbis(r)
	default:
		return Clip{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Clip{}, fmt.Errorf("decode %s: %w", format, err)
	}

	if opt.SampleRate > 0 && opt.SampleRate != clip.SampleRate {
		clip.Samples = resampleLinear(clip.Samples, clip.SampleRate, opt.SampleRate)
		clip.SampleRate = opt.SampleRate
	}
	if opt.MaxSamples > 0 && len(clip.Samples) > opt.MaxSamples {
		clip.Samples = clip.Samples[:opt.MaxSamples]
	}
	return clip, nil
}

func sniff(r io.ReadSeeker) (string, error) {
	magic, _ := bufio.NewReader(r).Peek(4)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	switch {
	case bytes.HasPrefix(magic, []byte("RIFF")):
		return FormatWAV, nil
	case bytes.HasPrefix(magic, []byte("OggS")):
		return FormatVorbis, nil
	case bytes.HasPrefix(magic, []byte("ID3")),
		len(magic) >= 2 && magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		return FormatMP3, nil
	}
	return "", ErrUnsupportedFormat
}

func decodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, errors.New("invalid wav")
	}
	pb, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, err
	}
	if pb == nil {
		return Clip{}, errors.New("empty wav")
	}

	bd := int(dec.BitDepth)
	if bd == 0 {
		bd = 16
	}

	ch, sr := 1, int(dec.SampleRate)
	if pb.Format != nil {
		if pb.Format.NumChannels > 0 {
			ch = pb.Format.NumChannels
		}
		if pb.Format.SampleRate > 0 {
			sr = pb.Format.SampleRate
		}
	}
	if sr <= 0 {
		sr = 44100
	}

	return Clip{
		Samples:    downmixInterleaved(intSliceToFloat32(pb.Data, bd), ch),
		SampleRate: sr,
		Channels:   ch,
		Format:     FormatWAV,
	}, nil
}

// decodeMP3 reads the decoder output, which is always 16-bit stereo.
func decodeMP3(r io.Reader) (Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Clip{}, err
	}
	var raw bytes.Buffer
	if _, err := io.Copy(&raw, dec); err != nil {
		return Clip{}, err
	}
	ints := make([]int16, raw.Len()/2)
	if err := binary.Read(bytes.NewReader(raw.Bytes()), binary.LittleEndian, &ints); err != nil {
		return Clip{}, err
	}

	sr := dec.SampleRate()
	if sr <= 0 {
		sr = 44100
	}
	return Clip{
		Samples:    downmixInterleaved(int16SliceToFloat32(ints), 2),
		SampleRate: sr,
		Channels:   2,
		Format:     FormatMP3,
	}, nil
}

func decodeVorbis(r io.Reader) (Clip, error) {
	pcm, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return Clip{}, err
	}
	if format == nil || format.Channels <= 0 || format.SampleRate <= 0 {
		return Clip{}, errors.New("invalid ogg/vorbis stream")
	}
	return Clip{
		Samples:    downmixInterleaved(pcm, format.Channels),
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Format:     FormatVorbis,
	}, nil
}

// intSliceToFloat32 scales PCM integers to [-1, 1]. 8-bit WAV is unsigned with silence at 128.
func intSliceToFloat32(data []int, bitDepth int) []float32 {
	out := make([]float32, len(data))
	offset := 0.0
	if bitDepth == 8 {
		offset = 128
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	for i, v := range data {
		out[i] = float32(clamp((float64(v)-offset)*scale, -1.0, 1.0))
	}
	return out
}

func int16SliceToFloat32(data []int16) []float32 {
	out := make([]float32, len(data))
	const scale = 1.0 / 32768.0
	for i, v := range data {
		out[i] = float32(float64(v) * scale)
	}
	return out
}

func downmixInterleaved(in []float32, channels int) []float32 {
	if channels <= 1 {
		return in
	}
	frames := len(in) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(in[i*channels+c])
		}
		out[i] = float32(sum / float64(channels))
	}
	return out
}

func resampleLinear(in []float32, inSR, outSR int) []float32 {
	if inSR == outSR || inSR <= 0 || len(in) == 0 {
		return in
	}
	ratio := float64(outSR) / float64(inSR)
	n := int(math.Ceil(float64(len(in)) * ratio))
	out := make([]float32, n)
	for i := range out {
		src := float64(i) / ratio
		i0 := int(math.Floor(src))
		switch {
		case i0 >= len(in)-1:
			out[i] = in[len(in)-1]
		default:
			a := float32(src - float64(i0))
			out[i] = in[i0]*(1-a) + in[i0+1]*a
		}
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
