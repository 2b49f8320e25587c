package strbuf

import "fmt"

// DefaultOverhead - Extra capacity reserved on every append when Conf.Overhead is zero
const DefaultOverhead = 20

// Conf - Is a struct passed in the call to New holding configuration for the string buffer
//   - Overhead is the number of extra bytes reserved beyond the format string on each Set or Append, it trades
//     memory for fewer reallocations when formatted arguments expand the text
type Conf struct {
	Overhead int
}

// String - A growable text buffer supporting formatted assignment and appending
type String struct {
	buf      []byte
	overhead int
}

// New - Returns a pointer to a new empty String
func New(conf Conf) *String {
	overhead := conf.Overhead
	if overhead <= 0 {
		overhead = DefaultOverhead
	}

	return &String{overhead: overhead}
}

// Set - Replaces the contents with the formatted text
func (S *String) Set(format string, args ...any) {
	S.buf = make([]byte, 0, len(format)+S.overhead)
	S.buf = fmt.Appendf(S.buf, format, args...)
}

// Append - Appends the formatted text
func (S *String) Append(format string, args ...any) {
	if need := len(S.buf) + len(format) + S.overhead; cap(S.buf) < need {
		grown := make([]byte, len(S.buf), need)
		copy(grown, S.buf)
		S.buf = grown
	}
	S.buf = fmt.Appendf(S.buf, format, args...)
}

// String - Returns the contents as a Go string
func (S *String) String() string {
	return string(S.buf)
}

// Len - Returns the length in bytes of the contents
func (S *String) Len() int {
	return len(S.buf)
}

// Free - Releases storage and resets the contents to empty
func (S *String) Free() {
	S.buf = nil
}
