package rng_test

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpc55go/hal/debug"
	"github.com/lpc55go/hal/raw"
	"github.com/lpc55go/hal/rng"
	"github.com/lpc55go/hal/syscon"
)

var (
	_ io.Reader   = rng.Enabled{}
	_ rand.Source = rng.Enabled{}
	_ rng.Reader  = rng.Enabled{}
)

type clockCall struct {
	enable bool
	p      syscon.Gated
}

type fakeClocks []clockCall

func (c *fakeClocks) EnableClock(p syscon.Gated)  { *c = append(*c, clockCall{true, p}) }
func (c *fakeClocks) DisableClock(p syscon.Gated) { *c = append(*c, clockCall{false, p}) }

// hardware models the refresh counter: it reads zero for the first idle polls
// and afterwards refreshes on every poll. After every 32 refreshes a new word
// is put into RANDOM_NUMBER.
type hardware struct {
	idle      int
	polls     int
	refreshes int
	words     uint32
}

func (h *hardware) counterVal(r *raw.RNG) raw.CounterVal {
	h.polls++
	if h.polls <= h.idle {
		return 0
	}
	h.refreshes++
	if h.refreshes%32 == 0 {
		h.words++
		r.RANDOM_NUMBER.Store(word(h.words))
	}
	return raw.CounterVal(1 << 8)
}

func word(n uint32) uint32 { return 0x11_22_33_00 | n }

func simulate(t *testing.T, h *hardware) rng.Enabled {
	t.Helper()
	t.Cleanup(rng.SetCounterVal(h.counterVal))
	raw.RNGBlock().RANDOM_NUMBER.Store(0)
	var clocks fakeClocks
	d := rng.Wrap(raw.RNGBlock())
	return d.Enabled(&clocks)
}

func TestLifecycle(t *testing.T) {
	regs := raw.RNGBlock()
	var clocks fakeClocks

	d := rng.Wrap(regs)
	require.Empty(t, clocks)

	e := d.Enabled(&clocks)
	require.Len(t, clocks, 1)
	assert.True(t, clocks[0].enable)
	assert.Same(t, regs, clocks[0].p)

	d = e.Disabled(&clocks)
	require.Len(t, clocks, 2)
	assert.False(t, clocks[1].enable)
	assert.Same(t, regs, clocks[1].p)

	assert.Same(t, regs, d.Release())
	d = rng.Wrap(regs)
	e = d.Enabled(&clocks)
	assert.Same(t, regs, e.Release())
}

func TestLifecycleSyscon(t *testing.T) {
	s := syscon.New()
	regs := raw.RNGBlock()
	sys := raw.SYSCONBlock()
	sys.AHBCLKCTRLSET[2].Store(0)
	sys.AHBCLKCTRLCLR[2].Store(0)

	d := rng.Wrap(regs)
	e := d.Enabled(s)
	assert.Equal(t, uint32(1<<13), sys.AHBCLKCTRLSET[2].Load())
	d = e.Disabled(s)
	assert.Equal(t, uint32(1<<13), sys.AHBCLKCTRLCLR[2].Load())
	assert.Same(t, regs, d.Release())
}

func TestTransitionsConsume(t *testing.T) {
	if debug.Enabled {
		t.Skip("stale handles panic in debug builds")
	}
	regs := raw.RNGBlock()
	var clocks fakeClocks

	d := rng.Wrap(regs)
	e := d.Enabled(&clocks)
	assert.Nil(t, d.Release(), "enabled handle")
	d = e.Disabled(&clocks)
	assert.Nil(t, e.Release(), "disabled handle")
	assert.Same(t, regs, d.Release())
	assert.Nil(t, d.Release(), "released handle")
}

func methods(v any) (names []string) {
	typ := reflect.TypeOf(v)
	for i := range typ.NumMethod() {
		names = append(names, typ.Method(i).Name)
	}
	return
}

func TestStateMethods(t *testing.T) {
	assert.ElementsMatch(t, []string{"Enabled", "Release"}, methods(&rng.Disabled{}))
	assert.ElementsMatch(t, []string{
		"Disabled", "Release", "ModuleID", "Uint32", "Uint64", "Fill", "Read",
	}, methods(&rng.Enabled{}))

	// Transitions need an addressable handle, which they clear.
	assert.Empty(t, methods(rng.Disabled{}))
	assert.ElementsMatch(t, []string{
		"ModuleID", "Uint32", "Uint64", "Fill", "Read",
	}, methods(rng.Enabled{}))
}

func TestModuleID(t *testing.T) {
	regs := raw.RNGBlock()
	regs.MODULEID.Store(raw.MakeModuleID(0xa0a3, 3, 2, 0))
	var clocks fakeClocks

	d := rng.Wrap(regs)
	id := d.Enabled(&clocks).ModuleID()
	assert.Equal(t, rng.ModuleID{ID: 0xa0a3, MajRev: 3, MinRev: 2, Aperture: 0}, id)
	assert.Equal(t, "0xa0a3 rev 3.2 aperture 0", id.String())
}

func TestUint32(t *testing.T) {
	h := &hardware{idle: 100}
	e := simulate(t, h)

	assert.Equal(t, word(1), e.Uint32())
	assert.Equal(t, 100+32, h.polls)
	assert.Equal(t, 32, h.refreshes)

	assert.Equal(t, word(2), e.Uint32())
	assert.Equal(t, 100+64, h.polls)
}

func TestUint32Blocks(t *testing.T) {
	regs := raw.RNGBlock()
	regs.COUNTER_VAL.Store(0)
	regs.RANDOM_NUMBER.Store(0xdead_beef)
	var clocks fakeClocks
	d := rng.Wrap(regs)
	e := d.Enabled(&clocks)

	result := make(chan uint32)
	go func() { result <- e.Uint32() }()

	select {
	case <-result:
		t.Fatal("returned before the counter refreshed")
	case <-time.After(50 * time.Millisecond):
	}

	regs.COUNTER_VAL.Store(raw.CounterVal(3 << 8))
	select {
	case v := <-result:
		assert.Equal(t, uint32(0xdead_beef), v)
	case <-time.After(5 * time.Second):
		t.Fatal("still blocking after the counter refreshed")
	}
}

func TestUint64(t *testing.T) {
	h := &hardware{}
	e := simulate(t, h)

	assert.Equal(t, uint64(word(1))<<32|uint64(word(2)), e.Uint64())
	assert.Equal(t, 64, h.polls)
}

func TestFill(t *testing.T) {
	native := func(n uint32) []byte {
		return binary.NativeEndian.AppendUint32(nil, word(n))
	}

	tests := []struct {
		n     int
		words int
	}{
		{0, 0}, {1, 1}, {4, 1}, {5, 2}, {6, 2}, {8, 2}, {13, 4},
	}
	for _, test := range tests {
		h := &hardware{}
		e := simulate(t, h)

		buf := make([]byte, test.n+4)
		for i := range buf {
			buf[i] = 0xa5
		}
		assert.Nil(t, e.Fill(buf[:test.n]))
		assert.Equal(t, test.words*32, h.polls, "length %d", test.n)

		var expected []byte
		for i := range test.words {
			expected = append(expected, native(uint32(i)+1)...)
		}
		assert.Equal(t, expected[:test.n], buf[:test.n], "length %d", test.n)
		assert.Equal(t, []byte{0xa5, 0xa5, 0xa5, 0xa5}, buf[test.n:], "length %d: wrote past end", test.n)
	}
}

func TestFillSixBytes(t *testing.T) {
	h := &hardware{}
	e := simulate(t, h)

	buf := make([]byte, 6)
	require.Nil(t, e.Fill(buf))
	assert.Equal(t, 2, int(h.words))
	assert.Equal(t, binary.NativeEndian.AppendUint32(nil, word(2))[:2], buf[4:])
}

func TestRead(t *testing.T) {
	h := &hardware{}
	e := simulate(t, h)

	buf := make([]byte, 10)
	n, err := io.ReadFull(e, buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 3, int(h.words))

	n, err = e.Read(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 3, int(h.words))
}

func TestRandSource(t *testing.T) {
	h := &hardware{}
	r := rand.New(simulate(t, h))

	r.Uint64()
	assert.Equal(t, 2, int(h.words))
}
