// Package hostinfo describes the machine a benchmark runs on.
//
// The description is best effort: the benchmark prints it in its header so
// that results pasted side by side can be traced back to hardware, but a
// failed probe never aborts a run.
package hostinfo
