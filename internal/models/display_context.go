package models

// DisplayContext is fixed once per run. It carries the terminal state of the
// standard streams together with the user's output flags.
type DisplayContext struct {
	StdinPiped  bool
	StdoutPiped bool

	ShowLineNumbers bool
	ReadFiles       bool
	CaseSensitive   bool

	// Color is resolved from StdoutPiped and the --color flag.
	Color bool
	// Banners is false in single-file mode, where the file name is implied.
	Banners bool
}
