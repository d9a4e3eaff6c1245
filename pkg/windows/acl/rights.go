package acl

// Standard and generic access rights, matching winnt.h. The list model
// itself never interprets mask bits; these constants exist so callers and
// the reassignment compensation rule share one vocabulary.
const (
	RightDelete      uint32 = 0x00010000
	RightReadControl uint32 = 0x00020000
	RightWriteDAC    uint32 = 0x00040000
	RightWriteOwner  uint32 = 0x00080000
	RightSynchronize uint32 = 0x00100000

	StandardRightsRequired uint32 = 0x000F0000
	StandardRightsAll      uint32 = 0x001F0000
	SpecificRightsAll      uint32 = 0x0000FFFF

	GenericRead    uint32 = 0x80000000
	GenericWrite   uint32 = 0x40000000
	GenericExecute uint32 = 0x20000000
	GenericAll     uint32 = 0x10000000
)

// FullControl is the mask granted to the local system SID by the
// compensating entry prepended during reassignment.
const FullControl = StandardRightsAll | SpecificRightsAll
