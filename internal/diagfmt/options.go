package diagfmt

// Opts configures diagnostic rendering.
type Opts struct {
	// Color wraps the header, the location arrow, and the caret line
	// in SGR sequences. The underline geometry is identical with
	// color on or off.
	Color bool
}
