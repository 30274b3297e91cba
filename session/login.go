/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import (
	"fmt"
	"net"
	"strconv"

	"github.com/lonami/mibomi-go/auth"
	"github.com/lonami/mibomi-go/log"
	"github.com/lonami/mibomi-go/proto"
	"github.com/lonami/mibomi-go/transport"
	"github.com/lonami/mibomi-go/version"
)

const (
	idHandshake   = 0x00
	idLoginStart  = 0x00
	idEncryption  = 0x01
	idSetCompress = 0x03
	idLoginOK     = 0x02
)

// LoginParams is everything Login needs to drive a connection from a
// bare TCP dial through Login Success.
type LoginParams struct {
	// Server is the host:port to dial.
	Server string
	// Username is sent in Login Start. For an online-mode login it
	// must match the authenticated account's current name.
	Username string

	// Online selects whether the encryption/session-join handshake
	// runs at all; an offline (cracked) server skips straight from
	// Login Start to Login Success.
	Online bool
	// AccessToken and ProfileID authenticate the session-join call an
	// online login makes when the server sends an Encryption Request.
	// Unused when Online is false.
	AccessToken string
	ProfileID   string

	Handlers Handlers
	Logger   *log.Logger
}

// Login dials params.Server, drives Handshake → StatusOrLogin →
// (Encryption?) → (EnableCompression?) → LoginSuccess, and returns a
// Session ready for Run. The returned LoginSuccess is handed back too,
// since callers commonly want the confirmed uuid/username.
func Login(params LoginParams) (*Session, proto.LoginSuccess, error) {
	conn, err := transport.Dial(params.Server)
	if err != nil {
		return nil, proto.LoginSuccess{}, err
	}

	host, portStr, err := net.SplitHostPort(params.Server)
	if err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}

	if err := conn.Send(idHandshake, proto.EncodeHandshake(version.ProtocolVersion, host, uint16(port), 2)); err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}
	if err := conn.Send(idLoginStart, proto.EncodeLoginStart(params.Username)); err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}

	pid, b, err := conn.Recv()
	if err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}

	if pid == idEncryption {
		req, err := proto.ReadEncryptionRequest(b)
		if err != nil {
			conn.Close()
			return nil, proto.LoginSuccess{}, err
		}
		if err := completeEncryption(conn, params, req); err != nil {
			conn.Close()
			return nil, proto.LoginSuccess{}, err
		}
		pid, b, err = conn.Recv()
		if err != nil {
			conn.Close()
			return nil, proto.LoginSuccess{}, err
		}
	}

	if pid == idSetCompress {
		sc, err := proto.ReadSetCompression(b)
		if err != nil {
			conn.Close()
			return nil, proto.LoginSuccess{}, err
		}
		if sc.Threshold >= 0 {
			conn.EnableCompression(int(sc.Threshold))
		}
		pid, b, err = conn.Recv()
		if err != nil {
			conn.Close()
			return nil, proto.LoginSuccess{}, err
		}
	}

	if pid != idLoginOK {
		conn.Close()
		return nil, proto.LoginSuccess{}, &ProtocolError{Reason: fmt.Sprintf("expected Login Success, got id 0x%02x", pid)}
	}
	ls, err := proto.ReadLoginSuccess(b)
	if err != nil {
		conn.Close()
		return nil, proto.LoginSuccess{}, err
	}

	return New(conn, params.Logger, params.Server, params.Handlers), ls, nil
}

// completeEncryption runs step 3 of the login flow: session-join (if
// the server isn't offline-mode), RSA-encrypt the shared secret and
// verify token, send the response, and flip the connection over to
// AES-128/CFB8 immediately after.
func completeEncryption(conn *transport.Conn, params LoginParams, req proto.EncryptionRequest) error {
	sharedSecret, err := auth.GenerateSharedSecret()
	if err != nil {
		return err
	}

	if req.ServerID != "-" {
		if !params.Online {
			return &AuthFailed{Reason: "server requires online-mode auth but Online is false"}
		}
		serverHash := auth.ComputeServerHash(req.ServerID, sharedSecret, req.PublicKey)
		ok, err := auth.SessionJoin(nil, params.AccessToken, params.ProfileID, serverHash)
		if err != nil {
			return err
		}
		if !ok {
			return &AuthFailed{Reason: "session join rejected"}
		}
	}

	pub, err := auth.ParsePublicKey(req.PublicKey)
	if err != nil {
		return err
	}
	encSecret, err := auth.EncryptPKCS1v15(pub, sharedSecret)
	if err != nil {
		return err
	}
	encToken, err := auth.EncryptPKCS1v15(pub, req.VerifyToken)
	if err != nil {
		return err
	}

	if err := conn.Send(idEncryption, proto.EncodeEncryptionResponse(encSecret, encToken)); err != nil {
		return err
	}
	return conn.EnableEncryption(sharedSecret)
}
