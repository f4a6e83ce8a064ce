// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bam

import "github.com/grailbio/hts/sam"

// IsFirstOfProperPair returns true if record is flagged both as properly
// paired and as the first read in the template. Exactly one record of each
// properly paired fragment satisfies this condition.
func IsFirstOfProperPair(record *sam.Record) bool {
	const want = sam.ProperPair | sam.Read1
	return record.Flags&want == want
}
