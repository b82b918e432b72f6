package emf

import (
	"bytes"
	"fmt"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

// maxCommentText bounds the bytes shown for comments of unknown kind.
const maxCommentText = 100

// Public comment identifiers.
const (
	publicBeginGroup      = 0x00000002
	publicMultiformats    = 0x40000004
	publicWindowsMetafile = 0x80000001
)

var (
	layoutBeginGroup = &records.Layout{Name: "EMRCOMMENT_BEGINGROUP", Fields: []records.Field{
		records.F("rectBounds", records.Rect),
		records.F("nDescription", records.U32),
	}}

	layoutWindowsMetafile = &records.Layout{Name: "EMRCOMMENT_WINDOWS_METAFILE", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("Reserved", records.U16),
		records.F("Checksum", records.U16),
		records.F("Flags", records.Hex),
		records.F("WinMetafileSize", records.U32),
	}}

	layoutMultiformats = &records.Layout{Name: "EMRCOMMENT_MULTIFORMATS", Fields: []records.Field{
		records.F("rclOutput", records.Rect),
		records.F("CountFormats", records.U32),
		{Name: "aFormats", Kind: records.Struct, CountOf: "CountFormats", Layout: &records.Layout{Name: "EmrFormat", Fields: []records.Field{
			records.F("Signature", records.Hex),
			records.F("Version", records.Hex),
			records.F("SizeData", records.U32),
			records.F("offData", records.U32),
		}}},
	}}
)

// commentType names the kind of a comment.
func commentType(id, public uint32, hasPublic bool) string {
	switch id {
	case enums.CommentEMFPlus:
		return "EMF+"
	case enums.CommentEMFSpool:
		return "EMF Spool"
	case enums.CommentPublic:
		if !hasPublic {
			return "Public"
		}
		if l, ok := enums.PublicComment.Label(public); ok {
			return "Public: " + l
		}
		return "Public: " + enums.Hex(public)
	}
	return ""
}

func buildComment(r *Record, root *props.Node) {
	cb, ok := r.view.U32(records.HeaderSize)
	if !ok {
		return
	}
	root.AddUint("cbData", cb)

	id, ok := r.view.U32(records.HeaderSize + 4)
	if !ok || cb < 4 {
		return
	}
	public, hasPublic := uint32(0), false
	if id == enums.CommentPublic {
		public, hasPublic = r.view.U32(records.HeaderSize + 8)
	}

	root.AddValue("Identifier", int64(id), enums.Hex(id))
	kind := commentType(id, public, hasPublic)
	if kind == "" {
		// unknown comment: show the leading bytes as text
		root.AddText("CommentType", "Unknown")
		n := min(cb, maxCommentText)
		if b, ok := r.view.Span(records.HeaderSize+4, n); ok {
			if i := bytes.IndexByte(b, 0); i >= 0 {
				b = b[:i]
			}
			root.AddText("Text", stream.DecodeANSI(b, enums.Encoding(r.file.opts.CodePage)))
		}
		return
	}
	root.AddText("CommentType", kind)

	switch id {
	case enums.CommentEMFPlus:
		if payload, ok := plusPayload(r); ok {
			buildPlusRecords(r, root, payload)
		}
	case enums.CommentPublic:
		if hasPublic {
			root.AddValue("CommentIdentifier", int64(public), enums.PublicComment.Format(public))
			buildPublicComment(r, root, public)
		}
	}
}

// buildPublicComment decodes the body after the public comment identifier.
func buildPublicComment(r *Record, root *props.Node, public uint32) {
	const body = records.HeaderSize + 12
	rd := r.view.Reader()
	if rd.SetOffset(body) != nil {
		return
	}

	switch public {
	case publicBeginGroup:
		vals, err := records.Walk(rd, layoutBeginGroup, r.Size(), root)
		if err != nil {
			return
		}
		if n := vals["nDescription"]; n > 0 && n <= r.Size()/2 {
			if b, ok := r.view.Span(body+20, n*2); ok {
				root.AddText("Description", stream.DecodeUTF16(b))
			}
		}
	case publicWindowsMetafile:
		records.Walk(rd, layoutWindowsMetafile, r.Size(), root)
	case publicMultiformats:
		records.Walk(rd, layoutMultiformats, r.Size(), root)
	}
}

// plusRecordName names an EMF+ record type.
func plusRecordName(t uint16) string {
	if l, ok := enums.PlusRecordType.Label(uint32(t)); ok {
		return l
	}
	return fmt.Sprintf("0x%04X", t)
}
