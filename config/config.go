/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package config loads a bot's connection settings from an INI-style
// file, the same gcfg-backed shape the teacher's ingesters use for their
// own config files, scaled down to what a Minecraft client needs: which
// server to dial, which account to log in as, and the handful of
// ClientSettings values the login scenario in the spec sends right
// after Login Success.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gravwell/gcfg"
)

const maxConfigSize = 64 * 1024

var (
	// ErrConfigTooLarge is returned by LoadFile for a file bigger than
	// any bot config has legitimate reason to be.
	ErrConfigTooLarge = errors.New("config: file too large")
	// ErrNoServer is returned by Verify when no server address was set.
	ErrNoServer = errors.New("config: global.server is required")
	// ErrNoUsername is returned by Verify when no username was set.
	ErrNoUsername = errors.New("config: global.username is required")
)

// Global holds the bot-wide settings every connection needs.
type Global struct {
	Server   string // host:port of the server to dial
	Username string // Mojang account name or, offline, the display name
	Online   bool   // whether to run the encryption/session-join handshake
	LogFile  string
	LogLevel string // one of the log package's level names; empty = INFO

	// CredentialFile, if set, is where auth.SaveCredentials persists the
	// access/client token cache between runs (see auth.LoadCredentials).
	CredentialFile string
}

// ClientSettings mirrors the fields the ClientSettings packet sends, so
// a bot can override the defaults from its config file instead of from
// Go source.
type ClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           int32
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           int32
}

// Config is the top-level shape read from an INI file: a [global]
// section and an optional [clientsettings] section.
type Config struct {
	Global         Global
	ClientSettings ClientSettings
}

// Default returns the ClientSettings the spec's end-to-end login
// scenario sends: locale=en_GB, view_distance=8, chat_mode=0,
// chat_colors=false, displayed_skin_parts=0x3f, main_hand=1.
func Default() Config {
	return Config{
		ClientSettings: ClientSettings{
			Locale:             "en_GB",
			ViewDistance:       8,
			ChatMode:           0,
			ChatColors:         false,
			DisplayedSkinParts: 0x3f,
			MainHand:           1,
		},
	}
}

// LoadFile reads and parses path, starting from Default() so any
// section the file omits keeps its default value.
func LoadFile(path string) (Config, error) {
	fin, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer fin.Close()

	fi, err := fin.Stat()
	if err != nil {
		return Config{}, err
	}
	if fi.Size() > maxConfigSize {
		return Config{}, ErrConfigTooLarge
	}

	bb := bytes.NewBuffer(nil)
	if _, err := io.Copy(bb, fin); err != nil {
		return Config{}, err
	}
	return LoadBytes(bb.Bytes())
}

// LoadBytes parses b the same way LoadFile does, without touching disk.
func LoadBytes(b []byte) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, string(b)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Verify checks the fields Session cannot proceed without.
func (c Config) Verify() error {
	if c.Global.Server == "" {
		return ErrNoServer
	}
	if c.Global.Username == "" {
		return ErrNoUsername
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("server=%s username=%s online=%v", c.Global.Server, c.Global.Username, c.Global.Online)
}
