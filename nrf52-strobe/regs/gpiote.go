package regs

// GPIOTE_Type is the GPIO tasks and events block.
type GPIOTE_Type struct {
	TASKS_OUT   [8]Register32 // 0x000
	_           [4]uint32
	TASKS_SET   [8]Register32 // 0x030
	_           [4]uint32
	TASKS_CLR   [8]Register32 // 0x060
	_           [32]uint32
	EVENTS_IN   [8]Register32 // 0x100
	_           [23]uint32
	EVENTS_PORT Register32 // 0x17C
	_           [97]uint32
	INTENSET    Register32 // 0x304
	INTENCLR    Register32 // 0x308
	_           [129]uint32
	CONFIG      [8]Register32 // 0x510
}

// GPIOTEChannels is the number of GPIOTE channels.
const GPIOTEChannels = 8

// Register offsets within the GPIOTE block.
const (
	GPIOTE_TASKS_OUT_Offset   = 0x000
	GPIOTE_TASKS_SET_Offset   = 0x030
	GPIOTE_TASKS_CLR_Offset   = 0x060
	GPIOTE_EVENTS_IN_Offset   = 0x100
	GPIOTE_EVENTS_PORT_Offset = 0x17C
	GPIOTE_INTENSET_Offset    = 0x304
	GPIOTE_INTENCLR_Offset    = 0x308
	GPIOTE_CONFIG_Offset      = 0x510
)

// CONFIG[n]: configuration for OUT[n], SET[n] and CLR[n] tasks and IN[n] event.
const (
	GPIOTE_CONFIG_MODE_Pos        = 0x0
	GPIOTE_CONFIG_MODE_Msk        = 0x3
	GPIOTE_CONFIG_MODE_Disabled   = 0x0
	GPIOTE_CONFIG_MODE_Event      = 0x1
	GPIOTE_CONFIG_MODE_Task       = 0x3
	GPIOTE_CONFIG_PSEL_Pos        = 0x8
	GPIOTE_CONFIG_PSEL_Msk        = 0x1f00
	GPIOTE_CONFIG_PORT_Pos        = 0xd
	GPIOTE_CONFIG_PORT_Msk        = 0x2000
	GPIOTE_CONFIG_POLARITY_Pos    = 0x10
	GPIOTE_CONFIG_POLARITY_Msk    = 0x30000
	GPIOTE_CONFIG_POLARITY_None   = 0x0
	GPIOTE_CONFIG_POLARITY_LoToHi = 0x1
	GPIOTE_CONFIG_POLARITY_HiToLo = 0x2
	GPIOTE_CONFIG_POLARITY_Toggle = 0x3
	GPIOTE_CONFIG_OUTINIT_Pos     = 0x14
	GPIOTE_CONFIG_OUTINIT_Msk     = 0x100000
	GPIOTE_CONFIG_OUTINIT_Low     = 0x0
	GPIOTE_CONFIG_OUTINIT_High    = 0x1
	GPIOTE_INTENSET_IN0_Pos       = 0x0
	GPIOTE_INTENSET_PORT_Pos      = 0x1f
	GPIOTE_INTEN_All              = 0x800000ff
)
