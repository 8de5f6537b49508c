package strobe

import (
	"testing"

	"github.com/nrf-sync/transmitter/nrf52-strobe/regs"
)

func TestPortPin(t *testing.T) {
	for _, tc := range []struct {
		port, number uint8
		want         Pin
	}{
		{0, 0, 0},
		{0, 31, 31},
		{1, 0, 32},
		{1, 8, 40},
		{1, 15, 47},
	} {
		p := PortPin(tc.port, tc.number)
		if p != tc.want || p.Port() != tc.port || p.Number() != tc.number {
			t.Errorf("PortPin(%d, %d): got %d (P%d.%02d)", tc.port, tc.number, p, p.Port(), p.Number())
		}
	}
	mustPanic(t, "port 2", func() { PortPin(2, 0) })
	mustPanic(t, "P1.16", func() { PortPin(1, 16) })
	mustPanic(t, "P0.32", func() { PortPin(0, 32) })
}

func TestGPIOTEClaims(t *testing.T) {
	g := NewGPIOTE(new(regs.GPIOTE_Type), regs.GPIOTE_BASE)
	g.Channel(0).TryClaim()
	ch, err := g.ClaimChannel()
	if err != nil || ch.Index() != 1 {
		t.Fatalf("ClaimChannel: got %d, %v", ch.Index(), err)
	}
	for i := 2; i < regs.GPIOTEChannels; i++ {
		if _, err := g.ClaimChannel(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.ClaimChannel(); err != ErrAllChannelsClaimed {
		t.Errorf("ClaimChannel with all claimed: got %v", err)
	}
	ch.Unclaim()
	if ch.IsClaimed() {
		t.Error("channel still claimed after Unclaim")
	}
	mustPanic(t, "channel 8", func() { g.Channel(8) })
}

func TestGPIOTETaskAddresses(t *testing.T) {
	g := NewGPIOTE(new(regs.GPIOTE_Type), regs.GPIOTE_BASE)
	ch := g.Channel(3)
	if got := ch.TaskOutAddr(); got != 0x4000600C {
		t.Errorf("TaskOutAddr: got %#x", got)
	}
	if got := ch.TaskSetAddr(); got != 0x4000603C {
		t.Errorf("TaskSetAddr: got %#x", got)
	}
	if got := ch.TaskClrAddr(); got != 0x4000606C {
		t.Errorf("TaskClrAddr: got %#x", got)
	}
}

func TestGPIOTEConfigureTask(t *testing.T) {
	hw := new(regs.GPIOTE_Type)
	ch := NewGPIOTE(hw, regs.GPIOTE_BASE).Channel(2)
	ch.ConfigureTask(PortPin(0, 17), PolarityLoToHi, High)
	const want = regs.GPIOTE_CONFIG_MODE_Task |
		17<<regs.GPIOTE_CONFIG_PSEL_Pos |
		regs.GPIOTE_CONFIG_POLARITY_LoToHi<<regs.GPIOTE_CONFIG_POLARITY_Pos |
		regs.GPIOTE_CONFIG_OUTINIT_High<<regs.GPIOTE_CONFIG_OUTINIT_Pos
	if got := hw.CONFIG[2].Get(); got != want {
		t.Errorf("CONFIG[2] mismatch got!=expected: %#x != %#x", got, want)
	}
	if got := hw.INTENCLR.Get(); got != 1<<2 {
		t.Errorf("INTENCLR: got %#x, want IN[2] interrupt disabled", got)
	}
	ch.Disable()
	if got := hw.CONFIG[2].Get(); got != regs.GPIOTE_CONFIG_MODE_Disabled {
		t.Errorf("CONFIG[2] after Disable: got %#x", got)
	}
	mustPanic(t, "pin 48", func() { ch.ConfigureTask(48, PolarityToggle, Low) })
}

func TestTimerConfig(t *testing.T) {
	cfg := DefaultTimerConfig()
	if got := cfg.TickFrequency(); got != 1_000_000 {
		t.Errorf("default tick frequency: got %d", got)
	}
	if got := cfg.MaxCount(); got != 1<<32-1 {
		t.Errorf("default MaxCount: got %#x", got)
	}
	cfg.SetCompareClear(2, true)
	cfg.SetCompareStop(3, true)
	if cfg.Shorts != 1<<2|1<<11 {
		t.Errorf("Shorts: got %#x", cfg.Shorts)
	}
	cfg.SetCompareClear(2, false)
	if cfg.Shorts != 1<<11 {
		t.Errorf("Shorts after clearing: got %#x", cfg.Shorts)
	}
	cfg.SetBitMode(16)
	cfg.SetPrescaler(0)
	if cfg.MaxCount() != 0xffff || cfg.TickFrequency() != 16_000_000 {
		t.Errorf("16-bit at prescaler 0: max %#x, freq %d", cfg.MaxCount(), cfg.TickFrequency())
	}
	mustPanic(t, "bit mode 12", func() { cfg.SetBitMode(12) })
	mustPanic(t, "prescaler 10", func() { cfg.SetPrescaler(10) })
	mustPanic(t, "compare slot 6", func() { cfg.SetCompare(6, 0) })
}

func TestTimerConfigure(t *testing.T) {
	hw := new(regs.TIMER_Type)
	tm := NewTimer(hw, regs.TIMER0_BASE, 4)
	hw.EVENTS_COMPARE[1].Set(regs.Triggered)
	hw.INTENSET.Set(regs.TIMER_INTEN_COMPARE_Msk)

	cfg := DefaultTimerConfig()
	cfg.SetCompare(0, 100)
	cfg.SetCompare(1, 200)
	tm.Configure(cfg)

	if hw.CC[0].Get() != 100 || hw.CC[1].Get() != 200 {
		t.Errorf("CC: got %d %d", hw.CC[0].Get(), hw.CC[1].Get())
	}
	if tm.CompareEvent(1) {
		t.Error("stale compare event not cleared")
	}
	if hw.TASKS_STOP.Get() != regs.Triggered || hw.TASKS_CLEAR.Get() != regs.Triggered || hw.TASKS_START.Get() != 0 {
		t.Error("Configure should stop and clear the timer without starting it")
	}
	if hw.INTENCLR.Get() != regs.TIMER_INTEN_COMPARE_Msk {
		t.Errorf("INTENCLR: got %#x", hw.INTENCLR.Get())
	}
	if got := tm.CompareEventAddr(2); got != 0x40008148 {
		t.Errorf("CompareEventAddr(2): got %#x", got)
	}

	mustPanic(t, "compare event slot 4", func() { tm.CompareEventAddr(4) })
	short := DefaultTimerConfig()
	short.SetCompareClear(5, true)
	mustPanic(t, "shortcut on slot 5", func() { tm.Configure(short) })
	beyond := DefaultTimerConfig()
	beyond.SetCompare(4, 500)
	mustPanic(t, "compare value on slot 4", func() { tm.Configure(beyond) })
	if hw.CC[0].Get() != 100 {
		t.Error("rejected configuration written to the timer")
	}
	wide := DefaultTimerConfig()
	wide.SetBitMode(16)
	wide.SetCompare(2, 1<<16)
	mustPanic(t, "compare beyond 16 bits", func() { tm.Configure(wide) })
	mustPanic(t, "7 slots", func() { NewTimer(hw, regs.TIMER0_BASE, 7) })
}

func TestTimerClaim(t *testing.T) {
	tm := NewTimer(new(regs.TIMER_Type), regs.TIMER3_BASE, 6)
	if tm.IsClaimed() || !tm.TryClaim() {
		t.Fatal("fresh timer should be claimable")
	}
	if tm.TryClaim() {
		t.Error("timer claimed twice")
	}
	tm.Unclaim()
	if tm.IsClaimed() || !tm.TryClaim() {
		t.Error("timer not claimable after Unclaim")
	}
}

func TestPPIChannels(t *testing.T) {
	hw := new(regs.PPI_Type)
	p := NewPPI(hw)
	a, err := p.ClaimChannel()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := p.ClaimChannel()
	if a.Index() != 0 || b.Index() != 1 {
		t.Fatalf("ClaimChannel order: got %d, %d", a.Index(), b.Index())
	}
	b.Connect(0x40008144, 0x40006000)
	b.SetFork(0x4000800C)
	if hw.CH[1].EEP.Get() != 0x40008144 || hw.CH[1].TEP.Get() != 0x40006000 || hw.FORK[1].TEP.Get() != 0x4000800C {
		t.Error("Connect/SetFork did not write the end-points")
	}

	p.EnableMask(a.Mask() | b.Mask())
	if got := hw.CHENSET.Get(); got != 0x3 {
		t.Errorf("EnableMask should be one CHENSET write of both channels, got %#x", got)
	}
	b.Disable()
	if got := hw.CHENCLR.Get(); got != 0x2 {
		t.Errorf("Disable: CHENCLR got %#x", got)
	}

	hw.CHEN.Set(0x2)
	if a.IsEnabled() || !b.IsEnabled() {
		t.Error("IsEnabled does not follow CHEN")
	}
	mustPanic(t, "channel 20", func() { p.Channel(regs.PPIProgrammableChannels) })
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
