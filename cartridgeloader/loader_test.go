// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader_test

import (
	"testing"

	"github.com/retrobus/vcs2600/cartridgeloader"
	"github.com/retrobus/vcs2600/test"
)

func TestNewLoaderFromFilenameDetectsAutoExtension(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromFilename("game.bin", "")
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, ld.Mapping, "AUTO")
	test.ExpectFailure(t, ld.IsSoundData)
}

func TestNewLoaderFromFilenameDetectsAudioExtension(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromFilename("tape.wav", "")
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, ld.Mapping, "AR")
	test.ExpectSuccess(t, ld.IsSoundData)
}

func TestNewLoaderFromFilenameDetectsExplicitExtension(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromFilename("game.f8", "")
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, ld.Mapping, "F8")
}

func TestNewLoaderFromFilenameRejectsEmptyFilename(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromFilename("   ", "")
	test.ExpectFailure(t, err == nil)
}

func TestNewLoaderFromDataComputesHashes(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("homebrew", []byte{0x01, 0x02, 0x03}, "F8")
	test.ExpectSuccess(t, err == nil)
	test.ExpectInequality(t, ld.HashSHA1, "")
	test.ExpectInequality(t, ld.HashMD5, "")
}
