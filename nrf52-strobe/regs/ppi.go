package regs

// PPI_CH_Type is the endpoint pair of one programmable PPI channel.
type PPI_CH_Type struct {
	EEP Register32 // event end-point
	TEP Register32 // task end-point
}

// PPI_TASKS_CHG_Type triggers enable/disable of a channel group.
type PPI_TASKS_CHG_Type struct {
	EN  Register32
	DIS Register32
}

// PPI_FORK_Type is the second task end-point of a channel.
type PPI_FORK_Type struct {
	TEP Register32
}

// PPI_Type is the programmable peripheral interconnect block.
type PPI_Type struct {
	TASKS_CHG [6]PPI_TASKS_CHG_Type // 0x000
	_         [308]uint32
	CHEN      Register32 // 0x500
	CHENSET   Register32 // 0x504
	CHENCLR   Register32 // 0x508
	_         uint32
	CH        [20]PPI_CH_Type // 0x510
	_         [148]uint32
	CHG       [6]Register32 // 0x800
	_         [62]uint32
	FORK      [32]PPI_FORK_Type // 0x910
}

const (
	// PPIChannels counts every channel; the ones at PPIProgrammableChannels
	// and above are pre-programmed by hardware.
	PPIChannels             = 32
	PPIProgrammableChannels = 20
	PPIGroups               = 6
)

// Register offsets within the PPI block.
const (
	PPI_TASKS_CHG_Offset = 0x000
	PPI_CHEN_Offset      = 0x500
	PPI_CHENSET_Offset   = 0x504
	PPI_CHENCLR_Offset   = 0x508
	PPI_CH_Offset        = 0x510
	PPI_CHG_Offset       = 0x800
	PPI_FORK_Offset      = 0x910
)
