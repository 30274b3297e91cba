/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import (
	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/proto"
)

// packetSpec names one entry in the play-state id→type map the
// dispatch loop consults: decode turns a raw payload into the typed
// record the generated reader would hand back.
type packetSpec struct {
	name   string
	decode func(*buf.Buf) (interface{}, error)
}

// playRegistry covers the clientbound packets a Play-state dispatch
// loop can receive. Login/status-state packets and serverbound-only
// ones (login_start, client_settings, chat_message_out, plugin_message,
// handshake...) aren't dispatched here; they're sent by the client, not
// decoded from it. keep_alive is also handled specially by the session
// itself (see keepAliveName) before user handlers ever see it.
var playRegistry = map[int32]packetSpec{
	0x00: {"spawn_object", func(b *buf.Buf) (interface{}, error) { return proto.ReadSpawnObject(b) }},
	0x05: {"spawn_player", func(b *buf.Buf) (interface{}, error) { return proto.ReadSpawnPlayer(b) }},
	0x09: {"update_block_entity", func(b *buf.Buf) (interface{}, error) { return proto.ReadUpdateBlockEntity(b) }},
	0x0b: {"block_update", func(b *buf.Buf) (interface{}, error) { return proto.ReadBlockUpdate(b, 0) }},
	0x0f: {"chat_message", func(b *buf.Buf) (interface{}, error) { return proto.ReadChatMessage(b) }},
	0x14: {"window_items", func(b *buf.Buf) (interface{}, error) { return proto.ReadWindowItems(b) }},
	0x18: {"custom_payload", func(b *buf.Buf) (interface{}, error) { return proto.ReadCustomPayload(b) }},
	0x1a: {"disconnect", func(b *buf.Buf) (interface{}, error) { return proto.ReadDisconnect(b) }},
	0x1f: {keepAliveName, func(b *buf.Buf) (interface{}, error) { return proto.ReadKeepAlive(b) }},
	0x23: {"join_game", func(b *buf.Buf) (interface{}, error) { return proto.ReadJoinGame(b) }},
	0x25: {"entity_relative_move", func(b *buf.Buf) (interface{}, error) { return proto.ReadEntityRelativeMove(b) }},
	0x2c: {"player_abilities", func(b *buf.Buf) (interface{}, error) { return proto.ReadPlayerAbilities(b) }},
	0x44: {"world_time", func(b *buf.Buf) (interface{}, error) { return proto.ReadWorldTime(b) }},
	0x4c: {"entity_teleport", func(b *buf.Buf) (interface{}, error) { return proto.ReadEntityTeleport(b) }},
}

// keepAliveName is the name the dispatch loop and the keep-alive
// watchdog both key off of, kept as a constant so the two can't drift.
const keepAliveName = "keep_alive"
