// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package tia

import (
	"testing"

	"github.com/retrobus/vcs2600/test"
)

type mockReadiness struct {
	ready bool
}

func (m *mockReadiness) Ready() bool     { return m.ready }
func (m *mockReadiness) SetReady(v bool) { m.ready = v }

func newTestTIA() (*TIA, *mockReadiness) {
	r := &mockReadiness{ready: true}
	return NewTIA(r, nil, nil), r
}

// TestWSYNCAtClockZeroDoesNotStall reproduces the spec's boundary example:
// WSYNC strobed at color_clock == 0 does not stall the MPU.
func TestWSYNCAtClockZeroDoesNotStall(t *testing.T) {
	tv, r := newTestTIA()
	test.Equate(t, tv.colorClock, 0)
	err := tv.WriteRegister(0x02, 0)
	test.ExpectSuccess(t, err == nil)
	test.ExpectSuccess(t, r.Ready())
}

// TestWSYNCAtOtherClockStallsUntilHsync stalls the MPU until the scanline
// wraps back to clock 0.
func TestWSYNCAtOtherClockStallsUntilHsync(t *testing.T) {
	tv, r := newTestTIA()
	tv.colorClock = 10
	err := tv.WriteRegister(0x02, 0)
	test.ExpectSuccess(t, err == nil)
	test.ExpectFailure(t, r.Ready())

	for tv.colorClock != 0 {
		tv.Step()
	}
	test.ExpectSuccess(t, r.Ready())
}

// TestScanlineWrapFiresHorizontalSync checks that a scanline wrap reports
// SyncHorizontal, not SyncVertical, to the sync callback.
func TestScanlineWrapFiresHorizontalSync(t *testing.T) {
	r := &mockReadiness{ready: true}
	var got uint8
	tv := NewTIA(r, nil, func(kind uint8) { got = kind })

	for i := 0; i < scanlineTotal; i++ {
		tv.Step()
	}
	test.Equate(t, got, SyncHorizontal)
}

// TestVSYNCRisingEdgeFiresVerticalSync checks that strobing VSYNC reports
// SyncVertical, not SyncHorizontal, to the sync callback.
func TestVSYNCRisingEdgeFiresVerticalSync(t *testing.T) {
	r := &mockReadiness{ready: true}
	var got uint8
	tv := NewTIA(r, nil, func(kind uint8) { got = kind })

	err := tv.WriteRegister(0x00, 0x02) // VSYNC on
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, got, SyncVertical)
}

// TestComposeSyncBitsMatchSyncKindLayout checks that the output signal
// word's high byte uses the same bit layout as the sync callback's
// argument: horizontal=1, vertical=2.
func TestComposeSyncBitsMatchSyncKindLayout(t *testing.T) {
	tv, _ := newTestTIA()

	tv.colorClock = 0
	word := tv.compose(true, 3)
	hi := uint8(word >> 8)
	test.ExpectSuccess(t, hi&SyncHorizontal != 0)
	test.ExpectFailure(t, hi&SyncVertical != 0)

	tv.colorClock = 10
	tv.vsync = true
	word = tv.compose(true, 3)
	hi = uint8(word >> 8)
	test.ExpectFailure(t, hi&SyncHorizontal != 0)
	test.ExpectSuccess(t, hi&SyncVertical != 0)
}

// TestHMOVEExtendsBlankAndAppliesMotion reproduces the spec's worked
// example: HMOVE strobed at color_clock <= 69 extends the horizontal blank
// to clock 76 and applies the clamped motion value.
func TestHMOVEExtendsBlankAndAppliesMotion(t *testing.T) {
	tv, _ := newTestTIA()
	tv.colorClock = 10
	tv.player0.SetMotion(0xf0) // decodeMotion(0xf0) == 7, plenty of headroom
	tv.player0.ResetPosition()
	before := tv.player0.Position()

	tv.hmove()

	test.Equate(t, tv.blankResetClock, 76)
	limit := (76 - 7 - 10) / 4
	delta := 7 // decodeMotion(0xf0)
	if delta > limit {
		delta = limit
	}
	test.ExpectInequality(t, tv.player0.Position(), before)
	test.Equate(t, tv.player0.Position(), wrapPositionForTest(before+delta))
}

// TestHMOVEIgnoredAfterClock69 reproduces the spec's boundary example: at
// color_clock > 69 HMOVE still sets the blank-reset clock but the motion
// window has already passed, so no position changes.
func TestHMOVEIgnoredAfterClock69(t *testing.T) {
	tv, _ := newTestTIA()
	tv.colorClock = 70
	tv.player0.SetMotion(0xf0)
	tv.player0.ResetPosition()
	before := tv.player0.Position()

	tv.hmove()

	test.Equate(t, tv.blankResetClock, 76)
	test.Equate(t, tv.player0.Position(), before)
}

// TestMissileBallCollisionSetsAndClears reproduces the spec's worked
// example: enabling missile-0 and the ball at the same position sets
// CXM0FB after that clock; CXCLR then clears it.
func TestMissileBallCollisionSetsAndClears(t *testing.T) {
	tv, _ := newTestTIA()

	tv.missile0.SetEnabled(true)
	tv.missile0.SetNUSIZ(0x00)
	tv.ball.SetEnabledCurrent(true)
	tv.ball.SetSize(0x00)

	// both objects reset to position 156 and need four advances to reach
	// position 0, where both draw predicates are satisfied.
	tv.missile0.ResetPosition()
	tv.ball.ResetPosition()
	for i := 0; i < 4; i++ {
		tv.missile0.Advance()
		tv.ball.Advance()
	}

	tv.colorClock = tv.blankResetClock // enter the visible window directly
	tv.Step()

	v, err := tv.ReadRegister(0x04) // CXM0FB
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v&0x40 != 0, true)

	err = tv.WriteRegister(0x2c, 0) // CXCLR
	test.ExpectSuccess(t, err == nil)

	v, _ = tv.ReadRegister(0x04)
	test.Equate(t, v&0x40 != 0, false)
}

func TestColorRegistersRoundtrip(t *testing.T) {
	tv, _ := newTestTIA()
	test.ExpectSuccess(t, tv.WriteRegister(0x06, 0x1e) == nil) // COLUP0
	test.Equate(t, tv.colors[0], uint8(0x1e))
	test.ExpectSuccess(t, tv.WriteRegister(0x09, 0x00) == nil) // COLUBK
	test.Equate(t, tv.colors[3], uint8(0x00))
}

// TestUnrecognisedWriteAddressIsIgnored reproduces the spec's non-fatal
// handling of an unknown bus address: the write is logged and dropped, not
// propagated as an error that would abort VCS.Run.
func TestUnrecognisedWriteAddressIsIgnored(t *testing.T) {
	tv, _ := newTestTIA()
	err := tv.WriteRegister(0x3f, 0)
	test.ExpectSuccess(t, err == nil)
}

func wrapPositionForTest(v int) int {
	v %= 160
	if v < 0 {
		v += 160
	}
	return v
}
