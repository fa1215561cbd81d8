package buffer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// StreamName is reported as the path of a buffer read from a stream
const StreamName = "<stdin>"

// File is a Memory buffer loaded from disk that can be written back.
// A File read from a stream is written to its output stream instead.
type File struct {
	*Memory

	path string
	mode fs.FileMode
	crlf bool
	orig []byte
	out  io.Writer
}

// OpenFile reads path into a buffer with the cursor at c
func OpenFile(path string, c Cursor) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat buffer file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("buffer path %q is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buffer file: %w", err)
	}

	f := newFile(data, c)
	f.path = path
	f.mode = info.Mode().Perm()
	return f, nil
}

// ReadStream creates a buffer from text read elsewhere. Saving writes the
// whole buffer to out.
func ReadStream(text string, out io.Writer, c Cursor) *File {
	f := newFile([]byte(text), c)
	f.path = StreamName
	f.out = out
	return f
}

func newFile(data []byte, c Cursor) *File {
	text := string(data)
	crlf := strings.Contains(text, "\r\n")
	if crlf {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	f := &File{
		Memory: NewMemory(text),
		crlf:   crlf,
		orig:   data,
	}
	f.MoveTo(c)
	return f
}

// Path returns the file the buffer was loaded from
func (f *File) Path() string {
	return f.path
}

// Modified reports whether the buffer differs from the file contents at load time
func (f *File) Modified() bool {
	return string(f.encode()) != string(f.orig)
}

// Save writes the buffer back to its file. The write goes to a temporary
// file in the same directory which is then renamed over the original.
func (f *File) Save() error {
	return f.save(false)
}

// SaveWithBackup saves like Save after copying the original contents to path.bak
func (f *File) SaveWithBackup() error {
	return f.save(true)
}

func (f *File) save(backup bool) error {
	if f.out != nil {
		return f.writeStream()
	}

	if backup {
		if err := os.WriteFile(f.path+".bak", f.orig, f.mode); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
	}

	data := f.encode()

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write buffer file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write buffer file: %w", err)
	}
	if err := os.Chmod(tmpName, f.mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set buffer file mode: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace buffer file: %w", err)
	}

	f.orig = data
	return nil
}

// writeStream writes the buffer to the output stream; there is no original
// file to back up
func (f *File) writeStream() error {
	data := f.encode()
	if _, err := f.out.Write(data); err != nil {
		return fmt.Errorf("failed to write buffer to output: %w", err)
	}
	f.orig = data
	return nil
}

func (f *File) encode() []byte {
	text := f.String()
	if f.crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return []byte(text)
}
