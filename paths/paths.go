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

package paths

import "path/filepath"

// baseDir is the directory, relative to the current working directory, that
// every resource path is rooted at.
const baseDir = ".goba"

// ResourcePath builds a path of the form ".goba/subdir/filename", omitting
// either component when empty.
func ResourcePath(subdir string, filename string) (string, error) {
	p := baseDir
	if subdir != "" {
		p = filepath.Join(p, subdir)
	}
	if filename != "" {
		p = filepath.Join(p, filename)
	}
	return p, nil
}
