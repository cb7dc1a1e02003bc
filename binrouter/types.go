package binrouter

import "fmt"

// Error is binrouter's exit-code enum. Unlike pathsearch.Error and
// pathsync.Error it carries no severity ordering of its own — Solve
// returns the first one it hits, or nil for Success.
type Error int

const (
	// Success indicates Solve wrote a complete CSV trace.
	Success Error = iota
	// ErrFileOpenFail indicates the output path could not be created.
	ErrFileOpenFail
	// ErrRequestBinIDOutOfRange indicates a BinRequest named a bin id
	// past the end of the generated bins slice.
	ErrRequestBinIDOutOfRange
	// ErrRequestBinNodeNotFound indicates a BinRequest's (col, row,
	// floor) has no node in the generated map.
	ErrRequestBinNodeNotFound
	// ErrRequestBinNodeNotParkable indicates a BinRequest's target node
	// has State >= StateNoParking.
	ErrRequestBinNodeNotParkable
	// ErrGenerateBinPathsFail indicates the bin phase produced a fatal
	// search or sync error for some bin.
	ErrGenerateBinPathsFail
	// ErrGenerateRobotPathsFail indicates a robot-phase chunk produced a
	// fatal search or sync error for some robot.
	ErrGenerateRobotPathsFail
)

// String renders an Error for logs and test failure messages.
func (e Error) String() string {
	switch e {
	case Success:
		return "success"
	case ErrFileOpenFail:
		return "file_open_fail"
	case ErrRequestBinIDOutOfRange:
		return "request_bin_id_out_of_range"
	case ErrRequestBinNodeNotFound:
		return "request_bin_node_not_found"
	case ErrRequestBinNodeNotParkable:
		return "request_bin_node_not_parkable"
	case ErrGenerateBinPathsFail:
		return "generate_bin_paths_fail"
	case ErrGenerateRobotPathsFail:
		return "generate_robot_paths_fail"
	default:
		return fmt.Sprintf("error(%d)", int(e))
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	return "binrouter: " + e.String()
}

// BinRequest asks the bin identified by BinID to end up parked at
// (Col, Row, Floor). Tagged for direct YAML scenario loading by
// cmd/swarmsim.
type BinRequest struct {
	BinID int `yaml:"bin_id"`
	Col   int `yaml:"col"`
	Row   int `yaml:"row"`
	Floor int `yaml:"floor"`
}
