// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package pool

import (
	"fmt"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// sendQueue is the number of records buffered per client before new ones
// are dropped for it.
const sendQueue = 64

var lastID atomic.Uint64

// Client is one consumer of broadcast records. Send is closed once the
// client is unregistered.
type Client struct {
	ID   string
	Send chan []byte
}

// NewClient returns a client with a unique ID, kind describing the
// transport ("unix", "ws").
func NewClient(kind string) *Client {
	return &Client{
		ID:   fmt.Sprintf("%s-%d", kind, lastID.Add(1)),
		Send: make(chan []byte, sendQueue),
	}
}

type Pool struct {
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte

	clients cmap.ConcurrentMap[*Client]
	dropped atomic.Uint64
}

func New() *Pool {
	return &Pool{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte),
		clients:    cmap.New[*Client](),
	}
}

// Len returns the number of registered clients. Safe to call from any
// goroutine.
func (p *Pool) Len() int {
	return p.clients.Count()
}

// Dropped returns the number of records discarded because a client was not
// keeping up.
func (p *Pool) Dropped() uint64 {
	return p.dropped.Load()
}

func (p *Pool) Start() {
	for {
		select {
		case c := <-p.Register:
			p.clients.Set(c.ID, c)
		case c := <-p.Unregister:
			if _, ok := p.clients.Get(c.ID); ok {
				p.clients.Remove(c.ID)
				close(c.Send)
			}
		case msg := <-p.Broadcast:
			p.send(terminate(msg))
		}
	}
}

func (p *Pool) send(msg []byte) {
	for _, c := range p.clients.Items() {
		select {
		case c.Send <- msg:
		default:
			p.dropped.Add(1)
		}
	}
}

// terminate returns msg ending with a newline, never modifying msg itself.
func terminate(msg []byte) []byte {
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		return msg
	}
	out := make([]byte, len(msg)+1)
	copy(out, msg)
	out[len(msg)] = '\n'
	return out
}
