package driver

// Stage describes a phase of checking one directory.
type Stage string

const (
	// StageCheck is the external command invocation.
	StageCheck Stage = "check"
	// StageParse is the diagnostic-stream parsing stage.
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusWorking indicates the stage is currently running.
	StatusWorking Status = "working"
	// StatusDone indicates the directory finished successfully.
	StatusDone Status = "done"
	// StatusCached indicates the report came from the cache.
	StatusCached Status = "cached"
	// StatusError indicates the directory failed.
	StatusError Status = "error"
)

// Event reports progress for one directory.
type Event struct {
	Dir    string
	Stage  Stage
	Status Status
	Err    error
}

// Sink consumes progress events.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(s Sink, evt Event) {
	if s != nil {
		s.OnEvent(evt)
	}
}
