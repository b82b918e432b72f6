package emf

// ObjectKind names the role a record plays at one end of a link.
type ObjectKind uint8

const (
	KindObject ObjectKind = iota // pen, brush, font or any selectable object
	KindPalette
	KindColorSpace
	KindBrush
	KindGraphicState
	KindObjManipulation
)

func (k ObjectKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindPalette:
		return "palette"
	case KindColorSpace:
		return "color space"
	case KindBrush:
		return "brush"
	case KindGraphicState:
		return "graphic state"
	case KindObjManipulation:
		return "object manipulation"
	default:
		return "unknown"
	}
}

// Link is a directed reference from one record to an earlier one: a handle
// use pointing at the record that created the object, or a restore pointing
// at the save it returns to.
type Link struct {
	Source     *Record
	Target     *Record
	SourceKind ObjectKind
	TargetKind ObjectKind
}

func (l Link) String() string {
	return l.SourceKind.String() + " -> " + l.TargetKind.String()
}

// addLink records l on both ends. Links are only added during the scan.
func addLink(source, target *Record, sourceKind, targetKind ObjectKind) {
	l := Link{Source: source, Target: target, SourceKind: sourceKind, TargetKind: targetKind}
	source.links = append(source.links, l)
	target.referrers = append(target.referrers, l)
}
