// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package romloader is how ROM files find their way into the emulator.
// A ROM has no required header or structure; whether it fits the address
// space is the memory package's decision, not ours.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors raised by the romloader package.
const (
	NoFilename = "romloader: no filename specified"
)

// FileExtensions is the list of file extensions usually carried by CHIP-8
// ROMs. A file with a different extension still loads; the unusual
// extension is noted in the log.
var FileExtensions = [...]string{".ch8", ".chip8", ".rom", ".bin"}

// Loader is used to specify the ROM to attach to the machine.
type Loader struct {
	// filename or URL of the ROM to load
	Filename string

	// copy of the loaded data. empty until Load() has been called
	Data []byte

	// expected hash of the loaded ROM. the empty string indicates that the
	// hash is unknown and need not be validated. after a load operation
	// the field holds the hash of the loaded data
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the Loader filename, suitable
// for window titles and log entries.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	return strings.TrimSuffix(shortName, path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	if cl.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough
	case "":
		var err error
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: unsupported URL scheme (%s)", scheme)
	}

	ext := strings.ToLower(path.Ext(cl.Filename))
	recognised := false
	for _, e := range FileExtensions {
		if ext == e {
			recognised = true
			break
		}
	}
	if !recognised {
		logger.Logf("romloader", "unusual file extension (%s)", ext)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("romloader: unexpected hash value")
	}
	cl.Hash = hash

	logger.Logf("romloader", "%s (%d bytes, sha1 %s)", cl.ShortName(), len(cl.Data), cl.Hash)

	return nil
}
