package ws

type WindowStyle uint32

// Window style constants
const (
	Overlapped       WindowStyle = 0x00000000
	Popup            WindowStyle = 0x80000000
	Child            WindowStyle = 0x40000000
	Minimize         WindowStyle = 0x20000000
	Visible          WindowStyle = 0x10000000
	Disabled         WindowStyle = 0x08000000
	ClipSiblings     WindowStyle = 0x04000000
	ClipChildren     WindowStyle = 0x02000000
	Maximize         WindowStyle = 0x01000000
	Caption          WindowStyle = 0x00C00000
	Border           WindowStyle = 0x00800000
	DlgFrame         WindowStyle = 0x00400000
	VScroll          WindowStyle = 0x00200000
	HScroll          WindowStyle = 0x00100000
	SysMenu          WindowStyle = 0x00080000
	ThickFrame       WindowStyle = 0x00040000
	Group            WindowStyle = 0x00020000
	TabStop          WindowStyle = 0x00010000
	MinimizeBox      WindowStyle = 0x00020000
	MaximizeBox      WindowStyle = 0x00010000
	Tiled            WindowStyle = 0x00000000
	Iconic           WindowStyle = 0x20000000
	SizeBox          WindowStyle = 0x00040000
	OverlappedWindow WindowStyle = 0x00000000 | 0x00C00000 | 0x00080000 | 0x00040000 | 0x00020000 | 0x00010000
	PopupWindow      WindowStyle = 0x80000000 | 0x00800000 | 0x00080000
	ChildWindow      WindowStyle = 0x40000000
)