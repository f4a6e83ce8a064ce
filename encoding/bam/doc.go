// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package bam provides record sinks and small helpers that augment the BAM
// and SAM packages in github.com/grailbio/hts.
//
// A sink is created with NewWriter. It writes records in BAM or SAM format,
// chosen by the output pathname, to a file or to standard output.
package bam
