package emf

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/skdltmxn/emf-go/internal/emfplus"
)

// DefaultPreviewSize is the preferred preview size reported in calc-only mode.
var DefaultPreviewSize = image.Pt(256, 256)

// Options configures a decode session.
type Options struct {
	// Logger receives scan diagnostics. Nil discards them.
	Logger *slog.Logger
	// CodePage is the charset used for 8-bit text before any font with an
	// explicit charset is selected.
	CodePage uint8
	// PreviewSize is the preferred preview size. Zero means DefaultPreviewSize.
	PreviewSize image.Point
}

// PlusHeader is the header of an embedded EMF+ stream.
type PlusHeader = emfplus.Header

// File is a decoded metafile. The scan runs once when the file is opened;
// afterwards the record list, handle resolution and links are immutable and
// safe for concurrent read access.
type File struct {
	data    []byte
	opts    Options
	log     *slog.Logger
	records []*Record
	scanErr error

	plus       *PlusHeader
	plusRecord *Record

	// peak number of simultaneously live handles
	peakHandles uint

	closed bool
	mu     sync.RWMutex

	header     *Header
	headerOnce sync.Once
	headerErr  error
}

// Open reads and decodes the metafile at path.
func Open(path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("emf: failed to open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("emf: failed to stat file: %w", err)
	}

	return OpenReader(f, stat.Size(), opts)
}

// OpenReader reads size bytes from r and decodes them.
// This allows reading from arbitrary sources (embedded, network, etc.)
func OpenReader(r io.ReaderAt, size int64, opts Options) (*File, error) {
	if size <= 0 {
		return nil, ErrEmpty
	}
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, fmt.Errorf("emf: failed to read data: %w", err)
	}
	return New(data, opts)
}

// New decodes a metafile held in memory. The buffer is borrowed and must not
// be modified while the File is in use. A framing error does not fail New;
// the records before it are kept and ScanErr reports the error.
func New(data []byte, opts Options) (*File, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if opts.PreviewSize.X <= 0 || opts.PreviewSize.Y <= 0 {
		opts.PreviewSize = DefaultPreviewSize
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	f := &File{data: data, opts: opts, log: log}
	f.scan()
	return f, nil
}

// Close releases the record list. Records obtained earlier stay usable.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	f.records = nil
	return nil
}

// Records returns the decoded records in stream order.
func (f *File) Records() []*Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.records
}

// Record returns the record at index i.
func (f *File) Record(i int) (*Record, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return nil, ErrFileClosed
	}
	if i < 0 || i >= len(f.records) {
		return nil, fmt.Errorf("%w: index %d", ErrRecordNotFound, i)
	}
	return f.records[i], nil
}

// Len returns the number of decoded records.
func (f *File) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.records)
}

// ScanErr returns the *FramingError that ended the scan early, or nil when
// the whole stream was decoded.
func (f *File) ScanErr() error {
	return f.scanErr
}

// PlusHeader returns the header of the embedded EMF+ stream, or nil when
// the file carries none.
func (f *File) PlusHeader() *PlusHeader {
	return f.plus
}

// PeakHandles returns the largest number of object handles live at once.
func (f *File) PeakHandles() uint {
	return f.peakHandles
}

// Size returns the length of the decoded buffer.
func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Header returns the decoded stream header.
func (f *File) Header() (*Header, error) {
	f.headerOnce.Do(func() {
		f.header, f.headerErr = f.loadHeader()
	})

	if f.headerErr != nil {
		return nil, f.headerErr
	}
	return f.header, nil
}

func (f *File) loadHeader() (*Header, error) {
	if len(f.records) == 0 || f.records[0].Type() != EMR_HEADER {
		return nil, ErrNoHeader
	}
	return parseHeader(f.records[0])
}

