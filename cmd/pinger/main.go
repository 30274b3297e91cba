/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Command pinger sends a status-state ping to a server and prints the
// JSON response it returns, timing the round trip on stderr.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/lonami/mibomi-go/log"
	"github.com/lonami/mibomi-go/proto"
	"github.com/lonami/mibomi-go/transport"
	"github.com/lonami/mibomi-go/version"
)

const defaultPort = "25565"

func main() {
	ver := flag.Bool("v", false, "print version and OS info and exit")
	flag.Parse()
	if *ver {
		version.PrintVersion(os.Stdout)
		log.PrintOSInfo(os.Stdout)
		return
	}

	addr := "localhost:" + defaultPort
	if flag.NArg() > 0 {
		addr = flag.Arg(0)
		if _, _, err := net.SplitHostPort(addr); err != nil {
			addr = addr + ":" + defaultPort
		}
	}

	fmt.Fprintf(os.Stderr, "Pinging %s...", addr)
	start := time.Now()

	response, err := ping(addr)
	if err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "ping failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, " Done (%.1fms).\n", time.Since(start).Seconds()*1000)
	fmt.Println(response)
}

func ping(addr string) (string, error) {
	conn, err := transport.Dial(addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", err
	}

	if err := conn.Send(0x00, proto.EncodeHandshake(version.ProtocolVersion, host, uint16(port), 1)); err != nil {
		return "", err
	}
	if err := conn.Send(0x00, proto.EncodeStatusRequest()); err != nil {
		return "", err
	}

	pid, b, err := conn.Recv()
	if err != nil {
		return "", err
	}
	if pid != 0x00 {
		return "", fmt.Errorf("pinger: expected status response, got id 0x%02x", pid)
	}
	resp, err := proto.ReadStatusResponse(b)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}
