/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"net"
	"testing"
	"time"

	"github.com/lonami/mibomi-go/proto"
	"github.com/lonami/mibomi-go/transport"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	return ln
}

func TestLoginOfflineSkipsEncryptionAndCompression(t *testing.T) {
	ln := listen(t)
	defer ln.Close()

	serverErr := make(chan error, 1)
	go func() {
		raw, err := ln.Accept()
		if err != nil {
			serverErr <- err
			return
		}
		server := transport.NewConn(raw)
		defer server.Close()

		if _, _, err := server.Recv(); err != nil { // handshake
			serverErr <- err
			return
		}
		if _, _, err := server.Recv(); err != nil { // login start
			serverErr <- err
			return
		}
		err = server.Send(0x02, proto.EncodeLoginSuccess("11111111-2222-3333-4444-555555555555", "Steve"))
		serverErr <- err
	}()

	sess, ls, err := Login(LoginParams{Server: ln.Addr().String(), Username: "Steve"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer sess.Close()

	if ls.Username != "Steve" || ls.Uuid != "11111111-2222-3333-4444-555555555555" {
		t.Fatalf("got %+v", ls)
	}

	select {
	case err := <-serverErr:
		if err != nil {
			t.Fatalf("server side: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server goroutine never finished")
	}
}

func TestLoginRejectsUnexpectedPacketAfterLoginStart(t *testing.T) {
	ln := listen(t)
	defer ln.Close()

	go func() {
		raw, err := ln.Accept()
		if err != nil {
			return
		}
		server := transport.NewConn(raw)
		defer server.Close()
		if _, _, err := server.Recv(); err != nil { // handshake
			return
		}
		if _, _, err := server.Recv(); err != nil { // login start
			return
		}
		server.Send(0x19, nil) // not a recognized login-state id
	}()

	_, _, err := Login(LoginParams{Server: ln.Addr().String(), Username: "Steve"})
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("got %T (%v), want *ProtocolError", err, err)
	}
}

// TestCompleteEncryptionHandshakeEnablesMatchingCiphers exercises the
// RSA/AES leg of the login flow directly: completeEncryption against a
// server that decrypts the response with a real RSA key, then both
// sides enable encryption and exchange one more frame to prove the
// cipher streams agree bit for bit.
func TestCompleteEncryptionHandshakeEnablesMatchingCiphers(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	verifyToken := []byte{0x01, 0x02, 0x03, 0x04}

	ln := listen(t)
	defer ln.Close()

	type serverResult struct {
		echoed proto.KeepAlive
		err    error
	}
	resultCh := make(chan serverResult, 1)
	go func() {
		raw, err := ln.Accept()
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		server := transport.NewConn(raw)
		defer server.Close()

		if err := server.Send(0x01, proto.EncodeEncryptionRequest("-", der, verifyToken)); err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		pid, body, err := server.Recv()
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		if pid != idEncryption {
			resultCh <- serverResult{err: &ProtocolError{Reason: "expected encryption response"}}
			return
		}
		resp, err := proto.ReadEncryptionResponse(body)
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		sharedSecret, err := rsa.DecryptPKCS1v15(rand.Reader, priv, resp.SharedSecret)
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		gotToken, err := rsa.DecryptPKCS1v15(rand.Reader, priv, resp.VerifyToken)
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		if string(gotToken) != string(verifyToken) {
			resultCh <- serverResult{err: &ProtocolError{Reason: "verify token mismatch"}}
			return
		}
		if err := server.EnableEncryption(sharedSecret); err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		if err := server.Send(0x1f, proto.EncodeKeepAlive(99)); err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		_, respBody, err := server.Recv()
		if err != nil {
			resultCh <- serverResult{err: err}
			return
		}
		ka, err := proto.ReadKeepAlive(respBody)
		resultCh <- serverResult{echoed: ka, err: err}
	}()

	raw, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	client := transport.NewConn(raw)
	defer client.Close()

	_, body, err := client.Recv() // encryption request
	if err != nil {
		t.Fatal(err)
	}
	req, err := proto.ReadEncryptionRequest(body)
	if err != nil {
		t.Fatal(err)
	}
	if err := completeEncryption(client, LoginParams{Online: false}, req); err != nil {
		t.Fatalf("completeEncryption: %v", err)
	}

	_, kaBody, err := client.Recv()
	if err != nil {
		t.Fatal(err)
	}
	ka, err := proto.ReadKeepAlive(kaBody)
	if err != nil {
		t.Fatal(err)
	}
	if err := client.Send(0x0b, proto.EncodeKeepAlive(ka.Id)); err != nil {
		t.Fatal(err)
	}

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("server side: %v", res.err)
		}
		if res.echoed.Id != 99 {
			t.Fatalf("echoed id = %d, want 99", res.echoed.Id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server goroutine never finished")
	}
}
