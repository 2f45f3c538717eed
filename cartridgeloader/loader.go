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

// Package cartridgeloader abstracts the ways a cartridge image reaches the
// emulation core: a local file, an embedded []byte (go:embed), or an http(s)
// URL. It also turns a Supercharger-style cassette recording (.wav/.mp3)
// into the RAM image hardware/memory/cartridge's cassette mapper expects,
// via DecodeCassette.
package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retrobus/vcs2600/logger"
)

// autoFileExtensions are extensions whose mapper is decided by fingerprinting
// the cartridge data itself, rather than by the extension.
var autoFileExtensions = []string{".BIN", ".ROM", ".A26"}

// audioFileExtensions identify a Supercharger recording that needs
// demodulating via DecodeCassette before it can be attached.
var audioFileExtensions = []string{".WAV", ".MP3"}

// explicitFileExtensions are extensions that name their mapper directly (the
// remainder of FileExtensions, once the auto and audio groups are removed).
var explicitFileExtensions = func() []string {
	var out []string
	for _, ext := range FileExtensions {
		if slices.Contains(autoFileExtensions, ext) || slices.Contains(audioFileExtensions, ext) {
			continue
		}
		out = append(out, ext)
	}
	return out
}()

// ErrNoFilename is returned by NewLoaderFromFilename when given an empty or
// whitespace-only filename.
var ErrNoFilename = errors.New("no filename")

// Loader abstracts all the ways cartridge data can be loaded into the
// emulation.
type Loader struct {
	// the name to use for the cartridge represented by Loader
	Name string

	// filename of cartridge being loaded. In the case of embedded data, this
	// field will contain the name of the data provided to
	// NewLoaderFromData().
	Filename string

	// empty string or "AUTO" indicates automatic fingerprinting
	Mapping string

	// IsSoundData is true when Mapping == "AR" and the data is a
	// Supercharger cassette recording rather than an already-demodulated
	// RAM image; see DecodeCassette.
	IsSoundData bool

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data.
	//
	// in the case of sound data (IsSoundData is true) the hash is of the
	// original audio file, not the decoded RAM image.
	HashSHA1 string
	HashMD5  string

	// cartridge data: empty until Open() is called, unless the loader was
	// created with NewLoaderFromData.
	//
	// the pointer-to-a-slice construct allows the cartridge to be
	// loaded/changed by a Loader instance that has been passed by value.
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a filename or an http(s) URL.
//
// mapping sets the Mapping field unless it is "AUTO" or the empty string, in
// which case the file extension is used: ".BIN"/".ROM"/".A26" resolve to
// "AUTO" (fingerprinted on load), ".WAV"/".MP3" resolve to "AR" with
// IsSoundData set, and every other recognised extension names its mapper
// directly (see FileExtensions).
func NewLoaderFromFilename(filename, mapping string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", ErrNoFilename)
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "AUTO"
	}

	ld := Loader{
		Filename: filename,
		Mapping:  mapping,
	}

	data := make([]byte, 0)
	ld.Data = &data

	if ld.Mapping == "AUTO" {
		extension := strings.ToUpper(filepath.Ext(filename))
		switch {
		case slices.Contains(autoFileExtensions, extension):
			ld.Mapping = "AUTO"
		case slices.Contains(audioFileExtensions, extension):
			ld.Mapping = "AR"
			ld.IsSoundData = true
		case slices.Contains(explicitFileExtensions, extension):
			ld.Mapping = extension[1:]
		}
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation when loading
// data already held in memory, e.g. embedded with go:embed.
//
// mapping should name the cartridge format, or "AUTO" to fingerprint it.
// name should not include a file extension.
func NewLoaderFromData(name string, data []byte, mapping string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "AUTO"
	}

	ld := Loader{
		Filename: name,
		Mapping:  mapping,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Read implements io.Reader over the loaded data.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Open reads the cartridge data from its filename (a local path or an
// http(s) URL) into Data, computing and checking its hashes. Embedded
// loaders (from NewLoaderFromData) are already open and this is a no-op.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		ld.data = bytes.NewBuffer(*ld.Data)
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var raw []byte
	var err error
	switch scheme {
	case "http", "https":
		resp, rerr := http.Get(ld.Filename)
		if rerr != nil {
			return fmt.Errorf("cartridgeloader: %w", rerr)
		}
		defer resp.Body.Close()
		raw, err = io.ReadAll(resp.Body)
	default:
		f, ferr := os.Open(ld.Filename)
		if ferr != nil {
			return fmt.Errorf("cartridgeloader: %w", ferr)
		}
		defer f.Close()
		raw, err = io.ReadAll(f)
	}
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(raw))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("cartridgeloader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	if ld.IsSoundData {
		isWAV := strings.EqualFold(filepath.Ext(ld.Filename), ".wav")
		ram, derr := DecodeCassette(raw, isWAV)
		if derr != nil {
			return fmt.Errorf("cartridgeloader: %w", derr)
		}
		raw = ram
	}

	*ld.Data = raw
	ld.data = bytes.NewBuffer(raw)
	logger.Logf("cartridgeloader", "loaded %d bytes (%s)", len(raw), ld.Filename)

	return nil
}
