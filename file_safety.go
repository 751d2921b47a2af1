//
// Copyright 2025 apstndb
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

const (
	// DefaultMaxFileSize is the default maximum size of a puzzle input (10MB)
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB
)

// FileSafetyOptions configures file safety checks
type FileSafetyOptions struct {
	// MaxSize is the maximum allowed file size (0 means use DefaultMaxFileSize)
	MaxSize int64
	// AllowNonRegular allows reading from non-regular files (not recommended)
	AllowNonRegular bool
}

// ValidateFileSafety checks if a file is safe to read based on the given options
func ValidateFileSafety(fi fs.FileInfo, path string, opts *FileSafetyOptions) error {
	if opts == nil {
		opts = &FileSafetyOptions{}
	}

	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	if !opts.AllowNonRegular && !fi.Mode().IsRegular() {
		mode := fi.Mode()
		switch {
		case mode.IsDir():
			return fmt.Errorf("%s is a directory", path)
		case mode&fs.ModeNamedPipe != 0:
			return fmt.Errorf("cannot read named pipe %s", path)
		case mode&fs.ModeDevice != 0:
			return fmt.Errorf("cannot read device file %s", path)
		default:
			return fmt.Errorf("cannot read special file %s (mode: %v)", path, mode)
		}
	}

	if fi.Size() > maxSize {
		return fmt.Errorf("file %s too large: %d bytes (max %d)", path, fi.Size(), maxSize)
	}

	return nil
}

// SafeReadFile reads a file from fsys after performing safety checks
func SafeReadFile(fsys afero.Fs, path string, opts *FileSafetyOptions) ([]byte, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	if err := ValidateFileSafety(fi, path, opts); err != nil {
		return nil, err
	}

	return afero.ReadFile(fsys, path)
}
