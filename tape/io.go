package tape

import (
	"bufio"
	"io"
)

// NewByteReader adapts r for use as Machine input. Readers that already
// implement io.ByteReader are returned unchanged.
func NewByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// NewByteWriter adapts w for use as Machine output. Writers that already
// implement io.ByteWriter are returned unchanged; anything else receives one
// unbuffered single-byte Write per call.
func NewByteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &byteWriter{w: w}
}

type byteWriter struct {
	w   io.Writer
	buf [1]byte
}

func (bw *byteWriter) WriteByte(c byte) error {
	bw.buf[0] = c
	n, err := bw.w.Write(bw.buf[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Run translates source and executes it with in and out as the byte
// collaborators. Translation errors are returned before any I/O happens.
func Run(source string, in io.Reader, out io.Writer) error {
	program, err := Translate(source)
	if err != nil {
		return err
	}
	var (
		reader io.ByteReader
		writer io.ByteWriter
	)
	if in != nil {
		reader = NewByteReader(in)
	}
	if out != nil {
		writer = NewByteWriter(out)
	}
	return NewMachine(reader, writer).Run(program)
}
