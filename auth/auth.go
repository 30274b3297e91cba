/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package auth drives the two Mojang HTTP endpoints an online-mode login
// needs: authserver.mojang.com/authenticate to turn a username/password
// into an access token, and sessionserver.mojang.com/session/minecraft/join
// to hand the server proof that the connecting player owns that token,
// plus the RSA/SHA-1 plumbing the join step's server hash requires.
package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	authServerURL    = `https://authserver.mojang.com/authenticate`
	sessionServerURL = `https://sessionserver.mojang.com/session/minecraft/join`

	agentName    = `Minecraft`
	agentVersion = 1

	defaultRequestTimeout = 15 * time.Second
)

// Profile is a Mojang game profile: the UUID and display name a
// LoginSuccess packet is expected to echo back.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthenticateResponse is the body authserver.mojang.com/authenticate
// returns on success.
type AuthenticateResponse struct {
	AccessToken     string    `json:"accessToken"`
	ClientToken     string    `json:"clientToken"`
	SelectedProfile Profile   `json:"selectedProfile"`
	AvailableProfiles []Profile `json:"availableProfiles"`
}

type agent struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type authenticateRequest struct {
	Agent       agent  `json:"agent"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	ClientToken string `json:"clientToken,omitempty"`
}

type authenticateError struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

// Authenticate exchanges a Mojang username and password for an access
// token and the account's selected profile. clientToken may be empty on
// a first-ever login; Mojang assigns one and it should be persisted
// (see Credentials) and reused on every subsequent call so the account
// doesn't accumulate a new client id per run.
func Authenticate(client *http.Client, username, password, clientToken string) (AuthenticateResponse, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	reqBody := authenticateRequest{
		Agent:       agent{Name: agentName, Version: agentVersion},
		Username:    username,
		Password:    password,
		ClientToken: clientToken,
	}
	var resp AuthenticateResponse
	if err := postJSON(client, authServerURL, reqBody, &resp); err != nil {
		return AuthenticateResponse{}, err
	}
	return resp, nil
}

type sessionJoinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// SessionJoin tells the session server that accessToken's owner
// (profileID) is connecting to the server identified by serverHash (see
// ComputeServerHash). The server performs the matching "has joined"
// check against this same session server once the client's packets
// arrive. The returned bool reports whether the session server
// answered with HTTP 204 (success); err is only set for a transport
// failure, never for a non-204 response.
func SessionJoin(client *http.Client, accessToken, profileID, serverHash string) (bool, error) {
	return sessionJoinAt(client, sessionServerURL, accessToken, profileID, serverHash)
}

func sessionJoinAt(client *http.Client, url, accessToken, profileID, serverHash string) (bool, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	reqBody := sessionJoinRequest{
		AccessToken:     accessToken,
		SelectedProfile: profileID,
		ServerID:        serverHash,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return false, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set(`Content-Type`, `application/json`)

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusNoContent, nil
}

func postJSON(client *http.Client, url string, reqBody, respBody interface{}) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(`Content-Type`, `application/json`)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized:
		var authErr authenticateError
		if err := json.NewDecoder(resp.Body).Decode(&authErr); err == nil && authErr.ErrorMessage != "" {
			return fmt.Errorf("%w: %s", ErrAuthFailed, authErr.ErrorMessage)
		}
		return ErrAuthFailed
	default:
		return fmt.Errorf("auth: unexpected status %d", resp.StatusCode)
	}

	if respBody != nil {
		return json.NewDecoder(resp.Body).Decode(respBody)
	}
	return nil
}
