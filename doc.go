// Bgpchart downloads a pre-rendered BGP statistics chart for one AS
// number from Hurricane Electric's BGP toolkit and writes the PNG to a
// local file.
//
// Usage:
//
//	bgpchart [-h] [-ip {v4,v6}] [-c {a,o,p}] [-o path] [-v] asn
//
// Exit codes:
//   - 0: success, the chart file was written
//   - 1: general error
//   - 2: usage error, the arguments did not validate
//   - 3: network error, including non-2xx responses
//   - 4: the service answered with an empty body
//   - 5: the chart could not be written to disk
package main
