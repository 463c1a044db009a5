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

// Package preferences collates the handful of knobs the host can tune on the
// ARM core without recompiling.
package preferences

import (
	"github.com/lj-hsu/goba/curated"
	"github.com/lj-hsu/goba/paths"
	"github.com/lj-hsu/goba/prefs"
)

// ARM collates the preference values consulted by the host when
// constructing and driving the CPU core. The core itself never reads these
// directly; cmd/goba resolves them once at start-up.
type ARM struct {
	dsk *prefs.Disk

	// AbortOnIllegalAccess makes an access to an address the memory surface
	// does not recognise return an error (which the core takes as a prefetch
	// or data abort) instead of a silent zero-value read or discarded write.
	AbortOnIllegalAccess prefs.Bool

	// CycleLimit bounds the number of steps "goba run" will execute before
	// stopping, when greater than zero. The core itself never consults this;
	// the base spec explicitly rejects heuristic self-termination.
	CycleLimit prefs.Int

	// SkipBIOSIntro moves the initial PC past the BIOS's intro/logo routine
	// instead of starting at the reset vector.
	SkipBIOSIntro prefs.Bool
}

// NewARM is the preferred method of initialisation for the ARM preferences
// type. Existing values are loaded from disk if a preferences file exists; a
// missing file is not an error.
func NewARM() (*ARM, error) {
	p := &ARM{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("arm.abortOnIllegalAccess", &p.AbortOnIllegalAccess); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("arm.cycleLimit", &p.CycleLimit); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("arm.skipBIOSIntro", &p.SkipBIOSIntro); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults resets every preference to its zero-config default.
func (p *ARM) SetDefaults() {
	p.AbortOnIllegalAccess.Set(false)
	p.CycleLimit.Set(0)
	p.SkipBIOSIntro.Set(false)
}

// Load reloads every preference from disk.
func (p *ARM) Load() error {
	return p.dsk.Load(false)
}

// Save persists every preference to disk.
func (p *ARM) Save() error {
	return p.dsk.Save()
}

// String implements fmt.Stringer.
func (p *ARM) String() string {
	return p.dsk.String()
}
