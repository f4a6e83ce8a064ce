// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// bio-fragsize computes fragment-size statistics of paired-end alignments,
// and filters or splits BAM files by fragment size. Run "bio-fragsize help"
// for the list of subcommands.
package main

import "github.com/grailbio/bio-fragsize/cmd/bio-fragsize/cmd"

func main() {
	cmd.Run()
}
