package wsex

type ExtendedWindowStyle uint32

const (
	DlgModalFrame    ExtendedWindowStyle = 0x00000001
	NoParentNotify   ExtendedWindowStyle = 0x00000004
	TopMost          ExtendedWindowStyle = 0x00000008
	AcceptFiles      ExtendedWindowStyle = 0x00000010
	Transparent      ExtendedWindowStyle = 0x00000020
	MDIChild         ExtendedWindowStyle = 0x00000040
	ToolWindow       ExtendedWindowStyle = 0x00000080
	WindowEdge       ExtendedWindowStyle = 0x00000100
	ClientEdge       ExtendedWindowStyle = 0x00000200
	ContextHelp      ExtendedWindowStyle = 0x00000400
	Right            ExtendedWindowStyle = 0x00001000
	Left             ExtendedWindowStyle = 0x00000000
	RTLReading       ExtendedWindowStyle = 0x00002000
	LTRReading       ExtendedWindowStyle = 0x00000000
	LeftScrollbar    ExtendedWindowStyle = 0x00004000
	RightScrollbar   ExtendedWindowStyle = 0x00000000
	ControlParent    ExtendedWindowStyle = 0x00010000
	StaticEdge       ExtendedWindowStyle = 0x00020000
	AppWindow        ExtendedWindowStyle = 0x00040000
	OverlappedWindow ExtendedWindowStyle = 0x00000100 | 0x00000200
	PaletteWindow    ExtendedWindowStyle = 0x00000100 | 0x00000080 | 0x00000008
	Layered          ExtendedWindowStyle = 0x00080000
	NoInheritLayout  ExtendedWindowStyle = 0x00100000
	LayoutRTL        ExtendedWindowStyle = 0x00400000
	NoActivate       ExtendedWindowStyle = 0x08000000
)
