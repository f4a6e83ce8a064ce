// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
Package fragment classifies paired-end alignment records by fragment size.

The fragment size of a record is the absolute value of its TLEN field. The
sign only encodes the orientation of the read relative to its mate.

The package provides streaming reducers and a router, each of which consumes
a bamprovider.Iterator exactly once:

  FilterRecords   copies records whose size lies in [above, below] to a sink.
  Summarize       computes the min, max, mean and count of the sizes.
  BuildHistogram  counts each size up to a ceiling.
  Split           routes each record to the sink of the first (or, with
                  multimembership, every) range that contains its size.

The mean reported by Summarize is a running mean computed with truncating
integer division, so it may differ from the exact arithmetic mean.
*/
package fragment
