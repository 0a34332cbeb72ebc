package wm

// Window messages handled by the window procedure.
const (
	Null        uint32 = 0x0000
	Create      uint32 = 0x0001
	Destroy     uint32 = 0x0002
	Move        uint32 = 0x0003
	Size        uint32 = 0x0005
	Activate    uint32 = 0x0006
	SetFocus    uint32 = 0x0007
	KillFocus   uint32 = 0x0008
	Paint       uint32 = 0x000F
	Close       uint32 = 0x0010
	Quit        uint32 = 0x0012
	EraseBkgnd  uint32 = 0x0014
	ShowWindow  uint32 = 0x0018
	NCCreate    uint32 = 0x0081
	NCDestroy   uint32 = 0x0082
	KeyDown     uint32 = 0x0100
	KeyUp       uint32 = 0x0101
	Char        uint32 = 0x0102
	SysCommand  uint32 = 0x0112
	MouseMove   uint32 = 0x0200
	LButtonDown uint32 = 0x0201
	LButtonUp   uint32 = 0x0202
	User        uint32 = 0x0400
)
