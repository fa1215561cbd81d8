package buffer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	snipIO "github.com/chriscorrea/snip/internal/io"
)

// StdioPath as the buffer path reads the script from stdin and writes the
// result to stdout
const StdioPath = "-"

// Workspace resolves the active text buffer of a session
type Workspace struct {
	path   string
	cursor Cursor
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer

	active *File
	opened bool
	err    error
}

// NewWorkspace creates a workspace whose active buffer is the file at path
// with the cursor at c. An empty path means there is no active buffer.
func NewWorkspace(path string, c Cursor) *Workspace {
	return &Workspace{path: path, cursor: c}
}

// WithLogger sets the logger for buffer resolution
func (w *Workspace) WithLogger(logger *slog.Logger) *Workspace {
	w.logger = logger
	return w
}

// WithStdio sets the streams used when the path is StdioPath
func (w *Workspace) WithStdio(stdin io.Reader, stdout io.Writer) *Workspace {
	w.stdin = stdin
	w.stdout = stdout
	return w
}

// Active returns the active buffer. It returns nil and no error when no
// buffer is configured or the file does not exist. The file is opened once.
func (w *Workspace) Active() (*File, error) {
	if w.opened {
		return w.active, w.err
	}
	w.opened = true

	if w.path == "" {
		w.debug("No active buffer configured")
		return nil, nil
	}

	if w.path == StdioPath {
		return w.openStream()
	}

	f, err := OpenFile(w.path, w.cursor)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.debug("Active buffer file does not exist", "path", w.path)
			return nil, nil
		}
		w.err = err
		return nil, err
	}

	w.debug("Active buffer opened", "path", w.path, "cursor", f.Cursor().String(), "lines", f.LineCount())
	w.active = f
	return f, nil
}

// openStream reads the active buffer from stdin. A terminal on stdin means
// nothing was piped, so there is no active buffer.
func (w *Workspace) openStream() (*File, error) {
	if w.stdout == nil {
		w.err = fmt.Errorf("no output stream for buffer %q", StdioPath)
		return nil, w.err
	}

	text, ok, err := snipIO.ReadPiped(w.stdin)
	if err != nil {
		w.err = err
		return nil, err
	}
	if !ok {
		w.debug("Nothing piped into stdin")
		return nil, nil
	}

	f := ReadStream(text, w.stdout, w.cursor)
	w.debug("Active buffer read from stdin", "cursor", f.Cursor().String(), "lines", f.LineCount())
	w.active = f
	return f, nil
}

// Available reports whether an active buffer exists
func (w *Workspace) Available() bool {
	f, err := w.Active()
	return err == nil && f != nil
}

// Path returns the configured buffer path
func (w *Workspace) Path() string {
	return w.path
}

func (w *Workspace) debug(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}
