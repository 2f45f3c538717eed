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

// Package debugtools renders the live object graph of a hardware.VCS (chip
// pointers, cartridge state, graphics objects) to a Graphviz .dot file, for
// a developer to inspect with `dot -Tpng`. It is a thin wrapper around
// memviz, in the same spirit as the debugger's own use of memviz to
// visualise parsed command templates.
package debugtools

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
)

// Dump renders v's object graph, in Graphviz dot format, to w.
func Dump(w io.Writer, v interface{}) {
	memviz.Map(w, v)
}

// DumpFile renders v's object graph to a new file at path, creating or
// truncating it as necessary.
func DumpFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debugtools: %w", err)
	}
	defer f.Close()

	Dump(f, v)

	return nil
}
