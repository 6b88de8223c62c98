// Package cleaning implements the table cleaning pipeline: column
// classification, value normalisation, empty-row pruning and exact
// duplicate removal, applied in that fixed order.
//
// Stages mutate the table in place and record their effect on the run
// report. The pipeline is assembled fresh for each run from the current
// settings; there is no configuration of stage order.
package cleaning
