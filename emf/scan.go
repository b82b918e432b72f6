package emf

import (
	"errors"
	"io"
	"log/slog"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/emfplus"
	"github.com/skdltmxn/emf-go/internal/records"
)

// lfCharSetOffset is the position of lfCharSet in an EXTCREATEFONTINDIRECTW
// record: header, ihFont, five 32-bit LOGFONT fields and three flag bytes.
const lfCharSetOffset = 8 + 4 + 20 + 3

// scanner carries the state of the forward pass. It is discarded once the
// scan completes.
type scanner struct {
	f       *File
	log     *slog.Logger
	handles *handleTable
	states  stateStack
	charset uint8
}

// scan frames the stream, resolves catalog entries and runs the per-record
// hooks in stream order.
func (f *File) scan() {
	s := &scanner{
		f:       f,
		log:     f.log,
		handles: newHandleTable(),
		charset: f.opts.CodePage,
	}

	it := records.NewIterator(f.data)
	for {
		v, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			f.scanErr = &FramingError{
				Index:  it.Index(),
				Offset: int64(it.Offset()),
				Size:   it.PeekSize(),
				Err:    err,
			}
			s.log.Warn("scan stopped",
				"index", it.Index(), "offset", it.Offset(), "size", it.PeekSize(), "err", err)
			break
		}

		r := &Record{file: f, view: v}
		f.records = append(f.records, r)
		s.dispatch(r)
	}

	s.log.Debug("scan complete",
		"records", len(f.records), "live_handles", s.handles.count(), "saved_states", s.states.depth())
}

// dispatch resolves the catalog entry of r and runs its scan hook.
func (s *scanner) dispatch(r *Record) {
	e, ok := lookup(r.Type())
	if !ok {
		s.log.Debug("unknown record type",
			"index", r.Index(), "offset", r.Offset(), "type", uint32(r.Type()))
		return
	}
	r.entry = e

	if e.layout != nil {
		if err := r.view.Check(e.layout); err != nil {
			s.log.Debug("record shorter than its layout",
				"index", r.Index(), "offset", r.Offset(), "type", e.name, "size", r.Size())
			return
		}
	}
	if e.scan != nil {
		e.scan(s, r)
	}
}

// use links r to the creator of handle h.
func (s *scanner) use(r *Record, h uint32, kind ObjectKind) (*Record, bool) {
	target, ok := s.handles.lookup(h)
	if !ok {
		s.log.Debug("unresolved handle",
			"index", r.Index(), "offset", r.Offset(), "type", r.Name(), "handle", h)
		return nil, false
	}
	addLink(r, target, KindObjManipulation, kind)
	return target, true
}

func scanCreate(s *scanner, r *Record) {
	h, ok := r.view.U32(records.HeaderSize)
	if !ok {
		return
	}
	if !s.handles.create(h, r) {
		s.log.Debug("creation with unusable handle",
			"index", r.Index(), "offset", r.Offset(), "type", r.Name(), "handle", h)
		return
	}
	s.f.peakHandles = max(s.f.peakHandles, s.handles.count())
}

func scanSelectObject(s *scanner, r *Record) {
	h, ok := r.view.U32(records.HeaderSize)
	if !ok {
		return
	}
	if enums.IsStock(h) {
		if name, ok := enums.StockObject(h); ok {
			r.stock = name
			if isStockFont(h) {
				s.charset = s.f.opts.CodePage
			}
		}
		return
	}
	target, ok := s.use(r, h, KindObject)
	if ok && target.Type() == EMR_EXTCREATEFONTINDIRECTW {
		if b := target.view.Bytes(); len(b) > lfCharSetOffset {
			s.charset = b[lfCharSetOffset]
		}
	}
}

func isStockFont(h uint32) bool {
	i := h &^ enums.StockFlag
	return (i >= 10 && i <= 14) || i == 16 || i == 17
}

func scanDeleteObject(s *scanner, r *Record) {
	h, ok := r.view.U32(records.HeaderSize)
	if !ok || enums.IsStock(h) {
		return
	}
	s.use(r, h, KindObject)
	s.handles.remove(h)
}

func scanDeleteColorSpace(s *scanner, r *Record) {
	h, ok := r.view.U32(records.HeaderSize)
	if !ok || enums.IsStock(h) {
		return
	}
	s.use(r, h, KindColorSpace)
	s.handles.remove(h)
}

// scanUse returns a hook linking the handle in the first field to its
// creation record.
func scanUse(kind ObjectKind) func(*scanner, *Record) {
	return func(s *scanner, r *Record) {
		h, ok := r.view.U32(records.HeaderSize)
		if !ok || enums.IsStock(h) {
			return
		}
		s.use(r, h, kind)
	}
}

// scanRegionBrush links the brush of fill and frame region records, stored
// after rclBounds and cbRgnData.
func scanRegionBrush(s *scanner, r *Record) {
	h, ok := r.view.U32(records.HeaderSize + 16 + 4)
	if !ok || enums.IsStock(h) {
		return
	}
	s.use(r, h, KindBrush)
}

func scanSaveDC(s *scanner, r *Record) {
	s.states.push(r)
}

func scanRestoreDC(s *scanner, r *Record) {
	rel, ok := r.view.I32(records.HeaderSize)
	if !ok {
		return
	}
	target, ok := s.states.restore(rel)
	if !ok {
		s.log.Debug("restore index out of range",
			"index", r.Index(), "offset", r.Offset(), "relative", rel, "depth", s.states.depth())
		return
	}
	addLink(r, target, KindGraphicState, KindGraphicState)
}

// scanText remembers the charset in effect for 8-bit text.
func scanText(s *scanner, r *Record) {
	r.charset = s.charset
}

// scanComment picks up the first EMF+ header.
func scanComment(s *scanner, r *Record) {
	if s.f.plus != nil {
		return
	}
	payload, ok := plusPayload(r)
	if !ok {
		return
	}
	rec, err := emfplus.NewIterator(payload).Next()
	if err != nil || rec.Type != emfplus.TypeHeader {
		return
	}
	h, err := emfplus.ParseHeader(rec)
	if err != nil {
		s.log.Debug("bad EMF+ header", "index", r.Index(), "offset", r.Offset(), "err", err)
		return
	}
	s.f.plus = h
	s.f.plusRecord = r
}

// plusPayload returns the EMF+ records carried by a comment record.
func plusPayload(r *Record) ([]byte, bool) {
	cb, ok := r.view.U32(records.HeaderSize)
	if !ok || cb < 4 {
		return nil, false
	}
	id, ok := r.view.U32(records.HeaderSize + 4)
	if !ok || id != enums.CommentEMFPlus {
		return nil, false
	}
	return r.view.Span(records.HeaderSize+8, cb-4)
}
