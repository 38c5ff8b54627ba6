package driver

import "time"

// Stage describes one step of the per-file pipeline.
type Stage string

const (
	// StageRead loads the source file from disk.
	StageRead Stage = "read"
	// StageTokenize scans the source into tokens.
	StageTokenize Stage = "tokenize"
	// StageParse builds the syntax tree.
	StageParse Stage = "parse"
	// StageLower lowers the tree to IR.
	StageLower Stage = "lower"
	// StageCodegen produces the object artifact.
	StageCodegen Stage = "codegen"
	// StageEmit persists the artifact beside the input.
	StageEmit Stage = "emit"
)

// Status reports how far a file has progressed through a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification. File is empty for events that
// describe the batch rather than a single file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must not
// block for long; the pipeline emits synchronously.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	s.Ch <- ev
}
