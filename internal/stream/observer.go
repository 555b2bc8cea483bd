package stream

// Observer receives the events of a single stream. A stream has exactly
// one observer at a time, use Fanout when several consumers must react.
type Observer interface {
	OnConnected(s *Stream)
	// err is nil when the peer closed the connection or Disconnect was called
	OnDisconnected(s *Stream, err error)
	OnMessageReceived(s *Stream, text string, ip string, port int)
	// OnFailed reports a failed connect attempt or a dropped or failed write
	OnFailed(s *Stream, err error)
}

// ObserverFuncs implements Observer with optional callbacks
type ObserverFuncs struct {
	Connected       func(s *Stream)
	Disconnected    func(s *Stream, err error)
	MessageReceived func(s *Stream, text string, ip string, port int)
	Failed          func(s *Stream, err error)
}

func (o ObserverFuncs) OnConnected(s *Stream) {
	if o.Connected != nil {
		o.Connected(s)
	}
}

func (o ObserverFuncs) OnDisconnected(s *Stream, err error) {
	if o.Disconnected != nil {
		o.Disconnected(s, err)
	}
}

func (o ObserverFuncs) OnMessageReceived(s *Stream, text string, ip string, port int) {
	if o.MessageReceived != nil {
		o.MessageReceived(s, text, ip, port)
	}
}

func (o ObserverFuncs) OnFailed(s *Stream, err error) {
	if o.Failed != nil {
		o.Failed(s, err)
	}
}

// Fanout forwards every event to each of its observers in order
type Fanout []Observer

func (f Fanout) OnConnected(s *Stream) {
	for _, o := range f {
		o.OnConnected(s)
	}
}

func (f Fanout) OnDisconnected(s *Stream, err error) {
	for _, o := range f {
		o.OnDisconnected(s, err)
	}
}

func (f Fanout) OnMessageReceived(s *Stream, text string, ip string, port int) {
	for _, o := range f {
		o.OnMessageReceived(s, text, ip, port)
	}
}

func (f Fanout) OnFailed(s *Stream, err error) {
	for _, o := range f {
		o.OnFailed(s, err)
	}
}
