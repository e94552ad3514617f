// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/user"
	"strconv"

	"gitlab.com/postmarketOS/gnss_nmea/internal/pool"
)

type Server struct {
	socket    string
	sockGroup string
	connPool  *pool.Pool
	sock      net.Listener
}

// Create a new Server. Records broadcast on connPool are forwarded to every
// client connected to the socket. An empty sockGroup keeps the socket owned
// by the current group.
func New(socket string, sockGroup string, connPool *pool.Pool) (s *Server) {
	s = &Server{
		socket:    socket,
		sockGroup: sockGroup,
		connPool:  connPool,
	}

	return
}

// Start listens on the socket and serves clients until Close is called.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

func (s *Server) Listen() (err error) {
	if err := os.RemoveAll(s.socket); err != nil {
		return fmt.Errorf("server.Listen(): %w", err)
	}

	s.sock, err = net.Listen("unix", s.socket)
	if err != nil {
		return fmt.Errorf("server.Listen(): %w", err)
	}

	if err := os.Chmod(s.socket, 0660); err != nil {
		s.sock.Close()
		return fmt.Errorf("server.Listen(): %w", err)
	}

	if s.sockGroup == "" {
		return nil
	}

	group, err := user.LookupGroup(s.sockGroup)
	if err != nil {
		s.sock.Close()
		return fmt.Errorf("server.Listen(): %w", err)
	}

	gid, err := strconv.ParseInt(group.Gid, 10, 32)
	if err != nil {
		s.sock.Close()
		return fmt.Errorf("server.Listen(): %w", err)
	}

	if err := os.Chown(s.socket, -1, int(gid)); err != nil {
		s.sock.Close()
		return fmt.Errorf("server.Listen(): %w", err)
	}

	return nil
}

// Serve accepts connections until the listener is closed, which is not
// reported as an error.
func (s *Server) Serve() error {
	log.Printf("Starting NMEA server, accepting connections at: %s\n", s.socket)
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("server.Serve(): %w", err)
		}

		client := pool.NewClient("unix")
		s.connPool.Register <- client

		go s.clientConnection(conn, client)

		log.Printf("New client connected, total: %d\n", s.connPool.Len())
	}
}

func (s *Server) Close() error {
	if s.sock == nil {
		return nil
	}
	return s.sock.Close()
}

// Routine run for each client connection
func (s *Server) clientConnection(conn net.Conn, c *pool.Client) {
	defer func() {
		s.connPool.Unregister <- c
		conn.Close()
		log.Printf("Client disconnected, total: %d\n", s.connPool.Len())
	}()

	// clients only listen, a finished read means they hung up
	go func() {
		io.Copy(io.Discard, conn)
		s.connPool.Unregister <- c
	}()

	for msg := range c.Send {
		if _, err := conn.Write(msg); err != nil {
			return
		}
	}
}
