/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package session drives one connection's login state machine and its
// inbound dispatch loop: Handshake, then Login (with the optional
// encryption and compression steps), then Play, handing decoded
// packets off to caller-registered callbacks the way the teacher's
// muxer hands entries off to its own consumers.
package session

import (
	"time"

	"github.com/lonami/mibomi-go/log"
	"github.com/lonami/mibomi-go/proto"
	"github.com/lonami/mibomi-go/timer"
	"github.com/lonami/mibomi-go/transport"
)

// keepAliveTimeout is how long the watchdog waits for an inbound
// Keep-Alive before it considers the connection dead.
const keepAliveTimeout = 20 * time.Second

// gameLoopTick is the cooperative game loop's nominal period.
const gameLoopTick = 15 * time.Millisecond

// Handlers is the set of callbacks a Session dispatches decoded
// packets to. Named is keyed by schema definition name (e.g.
// "chat_message"); a packet whose name has no entry goes to Generic
// instead, mirroring the on_<name>/on_generic fallback the spec
// describes. Unknown receives packets whose id isn't in the play-state
// registry at all. Any of the three may be nil, in which case that
// class of packet is silently dropped.
type Handlers struct {
	Named   map[string]func(v interface{}) error
	Generic func(name string, v interface{}) error
	Unknown func(pid int32) error
}

// GameLoopFunc is called roughly every gameLoopTick with the elapsed
// wall-clock delta since the previous call.
type GameLoopFunc func(dt time.Duration)

// Session owns one connection from handshake through disconnect: the
// transport, the keep-alive watchdog, and the inbound dispatch loop.
type Session struct {
	conn *transport.Conn
	log  *log.KVLogger

	handlers Handlers
	gameLoop GameLoopFunc

	keepAlive *timer.Timer
	stop      chan struct{}
}

// New wraps an already-connected transport.Conn. Callers normally get
// conn from Login, which also drives the handshake before returning.
// addr tags every line the session logs with which server it came
// from, since a bot running several sessions shares one logger.
func New(conn *transport.Conn, logger *log.Logger, addr string, handlers Handlers) *Session {
	if logger == nil {
		logger = log.NewDiscardLogger()
	}
	s := &Session{
		conn:     conn,
		log:      log.NewLoggerWithKV(logger, log.KV("server", addr)),
		handlers: handlers,
		stop:     make(chan struct{}),
	}
	s.keepAlive = timer.New(keepAliveTimeout, s.onKeepAliveExpired)
	return s
}

// SetGameLoop installs the optional cooperative game loop callback; it
// has no effect once Run has already started the loop goroutine.
func (s *Session) SetGameLoop(fn GameLoopFunc) {
	s.gameLoop = fn
}

// Close tears the session down: stops the keep-alive watchdog and
// closes the underlying connection, which unblocks Run's dispatch
// loop with a transport error.
func (s *Session) Close() error {
	s.keepAlive.Stop()
	close(s.stop)
	return s.conn.Close()
}

func (s *Session) onKeepAliveExpired() {
	s.log.Warn("session: keep-alive watchdog expired, disconnecting")
	s.conn.Close()
}

// Run starts the keep-alive watchdog and the dispatch loop (and, if
// SetGameLoop was called, the game loop), then blocks until the
// connection fails or Close is called. It returns the transport error
// that ended the dispatch loop, or nil after a clean Close.
func (s *Session) Run() error {
	s.keepAlive.Start()
	defer s.keepAlive.Stop()

	if s.gameLoop != nil {
		go s.runGameLoop()
	}
	return s.runDispatch()
}

func (s *Session) runGameLoop() {
	fn := s.gameLoop
	ticker := time.NewTicker(gameLoopTick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			func() {
				defer s.recoverHandlerPanic("game loop")
				fn(dt)
			}()
		}
	}
}

func (s *Session) runDispatch() error {
	for {
		pid, b, err := s.conn.Recv()
		if err != nil {
			select {
			case <-s.stop:
				return nil
			default:
			}
			return err
		}

		spec, ok := playRegistry[pid]
		if !ok {
			if s.handlers.Unknown != nil {
				s.dispatchSafely("on_unknown", func() error { return s.handlers.Unknown(pid) })
			}
			continue
		}

		v, err := spec.decode(b)
		if err != nil {
			s.log.Error("session: decoding packet failed", log.KV("packet", spec.name), log.KVErr(err))
			continue
		}
		if b.Remaining() != 0 {
			s.log.Warn("session: packet left unread bytes", log.KV("packet", spec.name), log.KV("bytes", b.Remaining()))
		}

		if spec.name == keepAliveName {
			s.handleKeepAlive(v.(proto.KeepAlive))
		}

		if fn, ok := s.handlers.Named[spec.name]; ok {
			s.dispatchSafely(spec.name, func() error { return fn(v) })
		} else if s.handlers.Generic != nil {
			s.dispatchSafely(spec.name, func() error { return s.handlers.Generic(spec.name, v) })
		}
	}
}

func (s *Session) handleKeepAlive(ka proto.KeepAlive) {
	s.keepAlive.Reset()
	if err := s.conn.Send(0x0b, proto.EncodeKeepAlive(ka.Id)); err != nil {
		s.log.Error("session: echoing keep-alive failed", log.KVErr(err))
	}
}

// dispatchSafely calls fn, logging both a returned error and a
// recovered panic without unwinding the dispatch loop: one handler's
// mistake never takes the whole connection down.
func (s *Session) dispatchSafely(name string, fn func() error) {
	defer s.recoverHandlerPanic(name)
	if err := fn(); err != nil {
		s.log.Error("session: handler failed", log.KV("handler", name), log.KVErr(err))
	}
}

func (s *Session) recoverHandlerPanic(name string) {
	if r := recover(); r != nil {
		s.log.Error("session: handler panicked", log.KV("handler", name), log.KV("panic", r))
	}
}

// Send frames and writes id/payload on the underlying connection.
func (s *Session) Send(id int32, payload []byte) error {
	return s.conn.Send(id, payload)
}
