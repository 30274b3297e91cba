/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostJSONDecodesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Username != "player" {
			t.Fatalf("got username %q", req.Username)
		}
		json.NewEncoder(w).Encode(AuthenticateResponse{
			AccessToken:     "token",
			ClientToken:     "client",
			SelectedProfile: Profile{ID: "uuid", Name: "player"},
		})
	}))
	defer srv.Close()

	var resp AuthenticateResponse
	err := postJSON(srv.Client(), srv.URL, authenticateRequest{Username: "player"}, &resp)
	if err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken != "token" || resp.SelectedProfile.Name != "player" {
		t.Fatalf("got %+v", resp)
	}
}

func TestPostJSONReturnsAuthFailedOnForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(authenticateError{
			Error:        "ForbiddenOperationException",
			ErrorMessage: "Invalid credentials.",
		})
	}))
	defer srv.Close()

	var resp AuthenticateResponse
	err := postJSON(srv.Client(), srv.URL, authenticateRequest{Username: "player"}, &resp)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestSessionJoinAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok, err := sessionJoinAt(srv.Client(), srv.URL, "token", "profile", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected ok=true on HTTP 204")
	}
}
