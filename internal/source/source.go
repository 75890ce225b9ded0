// Package source opens PGN input, transparently decompressing zstd, bzip2
// and gzip archives. Decompression runs in its own goroutine so that it
// overlaps with parsing.
package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	pgnerrors "github.com/lgbarn/pgn2csv-go/internal/errors"
)

// StdinName is the path argument that selects standard input.
const StdinName = "-"

// Compression identifies the container format of an input.
type Compression int

const (
	None Compression = iota
	Zstd
	Bzip2
	Gzip
)

var compressionNames = [...]string{
	None:  "none",
	Zstd:  "zstd",
	Bzip2: "bzip2",
	Gzip:  "gzip",
}

// String returns the name of the compression format.
func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return "unknown"
}

var (
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	bzip2Magic = []byte("BZh")
	gzipMagic  = []byte{0x1f, 0x8b}
)

// Detect picks the compression of an input from its leading bytes, falling
// back to the file extension when the bytes are inconclusive.
func Detect(name string, magic []byte) Compression {
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		return Zstd
	case bytes.HasPrefix(magic, bzip2Magic):
		return Bzip2
	case bytes.HasPrefix(magic, gzipMagic):
		return Gzip
	}

	// Too short to sniff: trust the name.
	if len(magic) < len(zstdMagic) {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".zst", ".zstd":
			return Zstd
		case ".bz2":
			return Bzip2
		case ".gz":
			return Gzip
		}
	}
	return None
}

// Input is an open PGN stream. Read returns decompressed text.
type Input struct {
	name        string
	compression Compression
	size        int64

	file    io.Closer
	counter *countingReader
	r       io.Reader

	pipe   *io.PipeReader
	group  *errgroup.Group
	cancel context.CancelFunc
}

// Open opens path, or standard input for "-", and starts decompression
// when the content is compressed. Cancelling ctx stops the decoder.
func Open(ctx context.Context, path string) (*Input, error) {
	if path == StdinName {
		return NewInput(ctx, "<stdin>", os.Stdin, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pgnerrors.ErrInputOpen, err)
	}

	in, err := NewInput(ctx, path, f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if st, err := f.Stat(); err == nil && st.Mode().IsRegular() {
		in.size = st.Size()
	}
	return in, nil
}

// NewInput wraps r. closer, if non-nil, is closed by Close after the
// decoder has stopped.
func NewInput(ctx context.Context, name string, r io.Reader, closer io.Closer) (*Input, error) {
	counter := &countingReader{r: r}
	br := bufio.NewReaderSize(counter, 64*1024)

	magic, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %s: %w", pgnerrors.ErrInputOpen, name, err)
	}

	in := &Input{
		name:        name,
		compression: Detect(name, magic),
		file:        closer,
		counter:     counter,
	}

	if in.compression == None {
		in.r = &ctxReader{ctx: ctx, r: br}
		return in, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	decoder, err := newDecoder(in.compression, &ctxReader{ctx: ctx, r: br})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %s: %w", pgnerrors.ErrInputOpen, name, err)
	}

	in.cancel = cancel
	pr, pw := io.Pipe()
	in.pipe = pr
	in.r = pr
	in.group, _ = errgroup.WithContext(ctx)
	in.group.Go(func() error {
		defer decoder.Close()
		_, err := io.Copy(pw, decoder)
		if err != nil {
			err = fmt.Errorf("%s %s: %w", in.compression, name, err)
		}
		pw.CloseWithError(err)
		return err
	})

	return in, nil
}

// newDecoder returns a decompressing reader over r.
func newDecoder(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case Bzip2:
		return bzip2.NewReader(r, nil)
	case Gzip:
		return gzip.NewReader(r)
	}
	return nil, fmt.Errorf("unsupported compression %s", c)
}

// Read reads decompressed PGN text.
func (in *Input) Read(p []byte) (int, error) {
	return in.r.Read(p)
}

// Name returns the path the input was opened with.
func (in *Input) Name() string {
	return in.name
}

// Compression returns the detected container format.
func (in *Input) Compression() Compression {
	return in.compression
}

// BytesRead returns the number of raw bytes consumed from the underlying
// file so far. For compressed input this is the compressed size.
func (in *Input) BytesRead() bytesize.ByteSize {
	return bytesize.ByteSize(in.counter.n.Load())
}

// Size returns the size of the input file, or 0 when unknown.
func (in *Input) Size() bytesize.ByteSize {
	return bytesize.ByteSize(in.size)
}

// Close stops the decoder, waits for it and closes the file.
func (in *Input) Close() error {
	if in.pipe != nil {
		in.cancel()
		in.pipe.Close()
		// Decode errors already reached the reader through the pipe.
		_ = in.group.Wait()
	}
	if in.file != nil {
		return in.file.Close()
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

// ctxReader fails reads once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
