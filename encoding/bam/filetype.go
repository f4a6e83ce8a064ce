// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bam

import "strings"

// FileType represents the container format of an alignment file.
type FileType int

const (
	// Unknown is a sentinel.
	Unknown FileType = iota
	// BAM file
	BAM
	// SAM file
	SAM
)

// String returns "bam", "sam", or "unknown".
func (t FileType) String() string {
	switch t {
	case BAM:
		return "bam"
	case SAM:
		return "sam"
	default:
		return "unknown"
	}
}

// ParseFileType parses the file type string. "bam" returns bam.BAM, for
// example. On error, it returns Unknown.
func ParseFileType(name string) FileType {
	switch strings.ToLower(name) {
	case "bam":
		return BAM
	case "sam":
		return SAM
	default:
		return Unknown
	}
}

// GuessFileType returns the file type from the pathname. Returns Unknown if
// the suffix is not recognized.
func GuessFileType(path string) FileType {
	switch {
	case strings.HasSuffix(path, ".bam"):
		return BAM
	case strings.HasSuffix(path, ".sam"):
		return SAM
	default:
		return Unknown
	}
}
