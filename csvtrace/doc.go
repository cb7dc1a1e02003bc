// Package csvtrace writes the bin-routing trace BinRouter.Solve emits to
// disk: one CSV row per entity snapshot and one per path visit, in the
// format described by swarmsim's external CSV contract — header
// "stage,type,id,x,y,z,t", CRLF line endings via encoding/csv's UseCRLF,
// and a synthetic per-visit "t" column derived from that node's bid-book
// rank rather than wall-clock time.
package csvtrace
