/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Command follower logs into an offline-mode server and follows whichever
// entity id a player names in chat with "follow <id>", until told "stop".
// It has no position of its own to steer with (the schema this library
// speaks carries no outbound movement packet), so "following" means
// logging the target's tracked position every tick rather than walking
// toward it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lonami/mibomi-go/entities"
	"github.com/lonami/mibomi-go/log"
	"github.com/lonami/mibomi-go/proto"
	"github.com/lonami/mibomi-go/session"
	"github.com/lonami/mibomi-go/version"
)

func main() {
	logPath := flag.String("log", "", "log file path (stderr if empty)")
	ver := flag.Bool("v", false, "print version and OS info and exit")
	flag.Parse()
	if *ver {
		version.PrintVersion(os.Stdout)
		log.PrintOSInfo(os.Stdout)
		return
	}

	addr := "localhost:25565"
	if flag.NArg() > 0 {
		addr = flag.Arg(0)
	}
	username := "Mibomi"
	if flag.NArg() > 1 {
		username = flag.Arg(1)
	}

	logger, err := log.NewClient(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "follower: opening log: %v\n", err)
		os.Exit(1)
	}

	tracked := entities.New()
	f := &follower{entities: tracked, log: logger}

	sess, ls, err := session.Login(session.LoginParams{
		Server:   addr,
		Username: username,
		Online:   false,
		Handlers: session.Handlers{
			Named: map[string]func(v interface{}) error{
				"player_abilities":     f.onPlayerAbilities,
				"spawn_player":         f.onSpawnPlayer,
				"entity_relative_move": f.onEntityRelativeMove,
				"entity_teleport":      f.onEntityTeleport,
				"chat_message":         f.onChatMessage,
			},
		},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "follower: login: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	f.sess = sess
	logger.Infof("follower: logged in as %s (%s)", ls.Username, ls.Uuid)

	sess.SetGameLoop(f.gameLoop)
	if err := sess.Run(); err != nil {
		logger.Infof("follower: disconnected: %v", err)
	}
}

// follower tracks other entities' positions and echoes the one it's
// been told to follow on every game tick.
type follower struct {
	sess     *session.Session
	entities *entities.Entities
	log      *log.Logger

	following   int32
	isFollowing bool
}

func (f *follower) onPlayerAbilities(v interface{}) error {
	if err := f.sess.Send(0x09, proto.EncodePluginMessage("LW|Mibomi", nil)); err != nil {
		return err
	}
	return f.sess.Send(0x04, proto.EncodeClientSettings("en_GB", 8, 0, false, 0x3f, 1))
}

func (f *follower) onSpawnPlayer(v interface{}) error {
	p := v.(proto.SpawnPlayer)
	f.entities.FeedSpawn(p.EntityId, p.X, p.Y, p.Z)
	return nil
}

func (f *follower) onEntityRelativeMove(v interface{}) error {
	m := v.(proto.EntityRelativeMove)
	if err := f.entities.FeedRelativeMove(m.EntityId, m.Dx, m.Dy, m.Dz); err != nil && err != entities.ErrUnknownEntity {
		return err
	}
	return nil
}

func (f *follower) onEntityTeleport(v interface{}) error {
	m := v.(proto.EntityTeleport)
	if err := f.entities.FeedMove(m.EntityId, m.X, m.Y, m.Z); err != nil && err != entities.ErrUnknownEntity {
		return err
	}
	return nil
}

// onChatMessage looks for a bare "follow <entity id>" or "stop" command.
// Real chat messages arrive as a JSON chat component, not plain text;
// a production client would decode that component to pull out the
// sender's words before matching on them.
func (f *follower) onChatMessage(v interface{}) error {
	msg := v.(proto.ChatMessage)
	fields := strings.Fields(msg.Message)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "follow":
		if len(fields) < 2 {
			return nil
		}
		id, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil
		}
		f.following = int32(id)
		f.isFollowing = true
		f.log.Infof("follower: now following entity %d", f.following)
	case "stop":
		f.isFollowing = false
		f.log.Infof("follower: stopped following")
	}
	return nil
}

func (f *follower) gameLoop(dt time.Duration) {
	if !f.isFollowing {
		return
	}
	target, ok := f.entities.Get(f.following)
	if !ok {
		return
	}
	f.log.Infof("follower: entity %d at (%.2f, %.2f, %.2f)", target.ID, target.X, target.Y, target.Z)
}
