// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/postmarketOS/gnss_nmea/internal/config"
	"gitlab.com/postmarketOS/gnss_nmea/internal/pool"
	"gitlab.com/postmarketOS/gnss_nmea/internal/publish"
	"gitlab.com/postmarketOS/gnss_nmea/internal/server"
	"gitlab.com/postmarketOS/gnss_nmea/internal/source"
)

func usage() {
	flag.CommandLine.Usage()
}

func main() {
	var confFile string
	flag.StringVar(&confFile, "c", "/etc/nmea_share.conf", "Configuration file to use.")
	var help bool
	flag.BoolVar(&help, "h", false, "Print help and quit.")

	flag.Usage = func() {
		fmt.Println("usage: nmea_share [OPTION...]")
		fmt.Println("Decodes NMEA sentences from the configured source and shares the records with socket, MQTT and WebSocket clients.")
		fmt.Println("Options:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if help {
		usage()
		return
	}

	conf, err := config.Parse(confFile)
	if err != nil {
		log.Fatal(err)
	}

	if err := share(conf); err != nil {
		log.Fatal(err)
	}
}

func share(conf *config.Config) error {
	kinds, err := conf.Kinds()
	if err != nil {
		return fmt.Errorf("share(): %w", err)
	}

	// connection broadcast pool
	connPool := pool.New()
	go connPool.Start()

	srv := server.New(conf.Socket, conf.OwnerGroup, connPool)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("share(): %w", err)
	}
	defer srv.Close()

	errChan := make(chan error, 2)
	go func() {
		if err := srv.Serve(); err != nil {
			errChan <- err
		}
	}()

	s := &sharer{
		kinds:     kinds,
		format:    conf.OutputFormat(),
		broadcast: connPool.Broadcast,
	}

	if conf.MQTTBroker != "" {
		m, err := publish.DialMQTT(conf.MQTTBroker, conf.MQTTClientID, conf.MQTTTopic)
		if err != nil {
			return fmt.Errorf("share(): %w", err)
		}
		defer m.Close()
		log.Printf("Publishing to MQTT broker %s, topic %s\n", conf.MQTTBroker, conf.MQTTTopic)
		s.mqtt = m
	}

	if conf.WebSocketListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/", publish.NewWebSocket(connPool))
		web := &http.Server{Addr: conf.WebSocketListen, Handler: mux}
		defer web.Close()
		go func() {
			log.Printf("Accepting WebSocket connections at: %s\n", conf.WebSocketListen)
			if err := web.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	stop := make(chan bool)
	defer close(stop)
	lines := source.Lines(source.New(conf.Source), stop)

	log.Printf("Reading sentences from %s\n", conf.Source)
	for {
		select {
		case err := <-errChan:
			return fmt.Errorf("share(): %w", err)
		case sig := <-sigChan:
			log.Printf("received %s, shutting down\n", sig)
			return nil
		case l, ok := <-lines:
			if !ok {
				log.Println("Source ended, shutting down")
				return nil
			}
			if l.Error != nil {
				return fmt.Errorf("share(): %w", l.Error)
			}
			s.handle(l.Line)
		}
	}
}
