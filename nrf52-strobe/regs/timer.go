package regs

// TIMER_Type is a TIMER/COUNTER block. TIMER0-2 implement CC[0..3] only,
// TIMER3-4 implement all six.
type TIMER_Type struct {
	TASKS_START    Register32 // 0x000
	TASKS_STOP     Register32 // 0x004
	TASKS_COUNT    Register32 // 0x008
	TASKS_CLEAR    Register32 // 0x00C
	TASKS_SHUTDOWN Register32 // 0x010
	_              [11]uint32
	TASKS_CAPTURE  [6]Register32 // 0x040
	_              [58]uint32
	EVENTS_COMPARE [6]Register32 // 0x140
	_              [42]uint32
	SHORTS         Register32 // 0x200
	_              [64]uint32
	INTENSET       Register32 // 0x304
	INTENCLR       Register32 // 0x308
	_              [126]uint32
	MODE           Register32 // 0x504
	BITMODE        Register32 // 0x508
	_              uint32
	PRESCALER      Register32 // 0x510
	_              [11]uint32
	CC             [6]Register32 // 0x540
}

// TIMERSlots is the size of the CC and EVENTS_COMPARE register arrays.
const TIMERSlots = 6

// Register offsets within a TIMER block.
const (
	TIMER_TASKS_START_Offset    = 0x000
	TIMER_TASKS_STOP_Offset     = 0x004
	TIMER_TASKS_COUNT_Offset    = 0x008
	TIMER_TASKS_CLEAR_Offset    = 0x00C
	TIMER_TASKS_SHUTDOWN_Offset = 0x010
	TIMER_TASKS_CAPTURE_Offset  = 0x040
	TIMER_EVENTS_COMPARE_Offset = 0x140
	TIMER_SHORTS_Offset         = 0x200
	TIMER_INTENSET_Offset       = 0x304
	TIMER_INTENCLR_Offset       = 0x308
	TIMER_MODE_Offset           = 0x504
	TIMER_BITMODE_Offset        = 0x508
	TIMER_PRESCALER_Offset      = 0x510
	TIMER_CC_Offset             = 0x540
)

const (
	// SHORTS: COMPAREn_CLEAR at bit n, COMPAREn_STOP at bit 8+n.
	TIMER_SHORTS_COMPARE0_CLEAR_Pos = 0x0
	TIMER_SHORTS_COMPARE2_CLEAR_Pos = 0x2
	TIMER_SHORTS_COMPARE0_STOP_Pos  = 0x8
	TIMER_SHORTS_Enabled            = 0x1

	// INTENSET/INTENCLR: COMPAREn at bit 16+n.
	TIMER_INTENSET_COMPARE0_Pos = 0x10
	TIMER_INTEN_COMPARE_Msk     = 0x3f0000

	TIMER_MODE_MODE_Msk             = 0x3
	TIMER_MODE_MODE_Timer           = 0x0
	TIMER_MODE_MODE_Counter         = 0x1
	TIMER_MODE_MODE_LowPowerCounter = 0x2

	TIMER_BITMODE_BITMODE_Msk   = 0x3
	TIMER_BITMODE_BITMODE_16Bit = 0x0
	TIMER_BITMODE_BITMODE_08Bit = 0x1
	TIMER_BITMODE_BITMODE_24Bit = 0x2
	TIMER_BITMODE_BITMODE_32Bit = 0x3

	TIMER_PRESCALER_PRESCALER_Msk = 0xf
	TIMER_PRESCALER_Max           = 9
)

// TIMERBaseFrequency is the timer input clock before the prescaler (PCLK16M).
const TIMERBaseFrequency = 16_000_000
