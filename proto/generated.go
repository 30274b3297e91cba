/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// This file is checked in rather than produced by a go:generate step, but
// every struct, ReadX and EncodeX below is exactly what
// mbm/codegen.GenerateDefinition emits for the matching entry in
// schema/mibomi.mbm. Keep the two in sync by hand.

package proto

import (
	"github.com/google/uuid"

	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/nbt"
)

type Handshake struct {
	Protocol      int32
	ServerAddress string
	ServerPort    uint16
	NextState     int32
}

func ReadHandshake(b *buf.Buf) (Handshake, error) {
	var v Handshake
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.Protocol = int32(_v)
	_v1, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.ServerAddress = _v1
	_fields, err := b.ReadFmt("H")
	if err != nil {
		return v, err
	}
	v.ServerPort = _fields[0].(uint16)
	_v2, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.NextState = int32(_v2)
	return v, nil
}

func EncodeHandshake(Protocol int32, ServerAddress string, ServerPort uint16, NextState int32) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(Protocol), 32)
	b.WriteStr(ServerAddress)
	b.WriteFmt("H", ServerPort)
	b.WriteVarInt(int64(NextState), 32)
	return b.Bytes()
}

type LoginStart struct {
	Name string
}

func ReadLoginStart(b *buf.Buf) (LoginStart, error) {
	var v LoginStart
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Name = _v
	return v, nil
}

func EncodeLoginStart(Name string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Name)
	return b.Bytes()
}

type LoginDisconnect struct {
	Reason string
}

func ReadLoginDisconnect(b *buf.Buf) (LoginDisconnect, error) {
	var v LoginDisconnect
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Reason = _v
	return v, nil
}

func EncodeLoginDisconnect(Reason string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Reason)
	return b.Bytes()
}

type LoginSuccess struct {
	Uuid     string
	Username string
}

func ReadLoginSuccess(b *buf.Buf) (LoginSuccess, error) {
	var v LoginSuccess
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Uuid = _v
	_v1, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Username = _v1
	return v, nil
}

func EncodeLoginSuccess(Uuid string, Username string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Uuid)
	b.WriteStr(Username)
	return b.Bytes()
}

type SetCompression struct {
	Threshold int32
}

func ReadSetCompression(b *buf.Buf) (SetCompression, error) {
	var v SetCompression
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.Threshold = int32(_v)
	return v, nil
}

func EncodeSetCompression(Threshold int32) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(Threshold), 32)
	return b.Bytes()
}

type StatusRequest struct {
}

func ReadStatusRequest(b *buf.Buf) (StatusRequest, error) {
	var v StatusRequest
	return v, nil
}

func EncodeStatusRequest() []byte {
	b := buf.NewEmpty()
	return b.Bytes()
}

type StatusResponse struct {
	Response string
}

func ReadStatusResponse(b *buf.Buf) (StatusResponse, error) {
	var v StatusResponse
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Response = _v
	return v, nil
}

func EncodeStatusResponse(Response string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Response)
	return b.Bytes()
}

type KeepAlive struct {
	Id int64
}

func ReadKeepAlive(b *buf.Buf) (KeepAlive, error) {
	var v KeepAlive
	_v, err := b.ReadVarInt(64)
	if err != nil {
		return v, err
	}
	v.Id = _v
	return v, nil
}

func EncodeKeepAlive(Id int64) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(Id, 64)
	return b.Bytes()
}

type JoinGame struct {
	EntityId         int32
	Gamemode         uint8
	Dimension        int32
	Difficulty       uint8
	MaxPlayers       uint8
	LevelType        string
	ReducedDebugInfo bool
}

func ReadJoinGame(b *buf.Buf) (JoinGame, error) {
	var v JoinGame
	_fields, err := b.ReadFmt("iBiBB")
	if err != nil {
		return v, err
	}
	v.EntityId = _fields[0].(int32)
	v.Gamemode = _fields[1].(uint8)
	v.Dimension = _fields[2].(int32)
	v.Difficulty = _fields[3].(uint8)
	v.MaxPlayers = _fields[4].(uint8)
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.LevelType = _v
	_fields1, err := b.ReadFmt("?")
	if err != nil {
		return v, err
	}
	v.ReducedDebugInfo = _fields1[0].(bool)
	return v, nil
}

func EncodeJoinGame(EntityId int32, Gamemode uint8, Dimension int32, Difficulty uint8, MaxPlayers uint8, LevelType string, ReducedDebugInfo bool) []byte {
	b := buf.NewEmpty()
	b.WriteFmt("iBiBB", EntityId, Gamemode, Dimension, Difficulty, MaxPlayers)
	b.WriteStr(LevelType)
	b.WriteFmt("?", ReducedDebugInfo)
	return b.Bytes()
}

type PlayerAbilities struct {
	Flags        int8
	FlyingSpeed  float32
	WalkingSpeed float32
}

func ReadPlayerAbilities(b *buf.Buf) (PlayerAbilities, error) {
	var v PlayerAbilities
	_fields, err := b.ReadFmt("bff")
	if err != nil {
		return v, err
	}
	v.Flags = _fields[0].(int8)
	v.FlyingSpeed = _fields[1].(float32)
	v.WalkingSpeed = _fields[2].(float32)
	return v, nil
}

func EncodePlayerAbilities(Flags int8, FlyingSpeed float32, WalkingSpeed float32) []byte {
	b := buf.NewEmpty()
	b.WriteFmt("bff", Flags, FlyingSpeed, WalkingSpeed)
	return b.Bytes()
}

type ClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           int32
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           int32
}

func ReadClientSettings(b *buf.Buf) (ClientSettings, error) {
	var v ClientSettings
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Locale = _v
	_fields, err := b.ReadFmt("b")
	if err != nil {
		return v, err
	}
	v.ViewDistance = _fields[0].(int8)
	_v1, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.ChatMode = int32(_v1)
	_fields1, err := b.ReadFmt("?B")
	if err != nil {
		return v, err
	}
	v.ChatColors = _fields1[0].(bool)
	v.DisplayedSkinParts = _fields1[1].(uint8)
	_v2, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.MainHand = int32(_v2)
	return v, nil
}

func EncodeClientSettings(Locale string, ViewDistance int8, ChatMode int32, ChatColors bool, DisplayedSkinParts uint8, MainHand int32) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Locale)
	b.WriteFmt("b", ViewDistance)
	b.WriteVarInt(int64(ChatMode), 32)
	b.WriteFmt("?B", ChatColors, DisplayedSkinParts)
	b.WriteVarInt(int64(MainHand), 32)
	return b.Bytes()
}

type PluginMessage struct {
	Channel string
	Data    []byte
}

func ReadPluginMessage(b *buf.Buf) (PluginMessage, error) {
	var v PluginMessage
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Channel = _v
	v.Data = b.ReadLeft()
	return v, nil
}

func EncodePluginMessage(Channel string, Data []byte) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Channel)
	b.WriteLeft(Data)
	return b.Bytes()
}

type CustomPayload struct {
	Channel string
	Data    []byte
}

func ReadCustomPayload(b *buf.Buf) (CustomPayload, error) {
	var v CustomPayload
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Channel = _v
	v.Data = b.ReadLeft()
	return v, nil
}

func EncodeCustomPayload(Channel string, Data []byte) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Channel)
	b.WriteLeft(Data)
	return b.Bytes()
}

type ChatMessage struct {
	Message  string
	Position int8
}

func ReadChatMessage(b *buf.Buf) (ChatMessage, error) {
	var v ChatMessage
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Message = _v
	_fields, err := b.ReadFmt("b")
	if err != nil {
		return v, err
	}
	v.Position = _fields[0].(int8)
	return v, nil
}

func EncodeChatMessage(Message string, Position int8) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Message)
	b.WriteFmt("b", Position)
	return b.Bytes()
}

type ChatMessageOut struct {
	Message string
}

func ReadChatMessageOut(b *buf.Buf) (ChatMessageOut, error) {
	var v ChatMessageOut
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Message = _v
	return v, nil
}

func EncodeChatMessageOut(Message string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Message)
	return b.Bytes()
}

type Disconnect struct {
	Reason string
}

func ReadDisconnect(b *buf.Buf) (Disconnect, error) {
	var v Disconnect
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Reason = _v
	return v, nil
}

func EncodeDisconnect(Reason string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Reason)
	return b.Bytes()
}

type WorldTime struct {
	WorldAge  int64
	TimeOfDay int64
}

func ReadWorldTime(b *buf.Buf) (WorldTime, error) {
	var v WorldTime
	_fields, err := b.ReadFmt("qq")
	if err != nil {
		return v, err
	}
	v.WorldAge = _fields[0].(int64)
	v.TimeOfDay = _fields[1].(int64)
	return v, nil
}

func EncodeWorldTime(WorldAge int64, TimeOfDay int64) []byte {
	b := buf.NewEmpty()
	b.WriteFmt("qq", WorldAge, TimeOfDay)
	return b.Bytes()
}

type EntityTeleport struct {
	EntityId int32
	X        float64
	Y        float64
	Z        float64
	Yaw      float64
	Pitch    float64
	OnGround bool
}

func ReadEntityTeleport(b *buf.Buf) (EntityTeleport, error) {
	var v EntityTeleport
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.EntityId = int32(_v)
	_fields, err := b.ReadFmt("ddd")
	if err != nil {
		return v, err
	}
	v.X = _fields[0].(float64)
	v.Y = _fields[1].(float64)
	v.Z = _fields[2].(float64)
	_v1, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Yaw = _v1
	_v2, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Pitch = _v2
	_fields1, err := b.ReadFmt("?")
	if err != nil {
		return v, err
	}
	v.OnGround = _fields1[0].(bool)
	return v, nil
}

func EncodeEntityTeleport(EntityId int32, X float64, Y float64, Z float64, Yaw float64, Pitch float64, OnGround bool) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(EntityId), 32)
	b.WriteFmt("ddd", X, Y, Z)
	b.WriteAngle(Yaw)
	b.WriteAngle(Pitch)
	b.WriteFmt("?", OnGround)
	return b.Bytes()
}

type EntityRelativeMove struct {
	EntityId int32
	Dx       int16
	Dy       int16
	Dz       int16
	OnGround bool
}

func ReadEntityRelativeMove(b *buf.Buf) (EntityRelativeMove, error) {
	var v EntityRelativeMove
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.EntityId = int32(_v)
	_fields, err := b.ReadFmt("hhh?")
	if err != nil {
		return v, err
	}
	v.Dx = _fields[0].(int16)
	v.Dy = _fields[1].(int16)
	v.Dz = _fields[2].(int16)
	v.OnGround = _fields[3].(bool)
	return v, nil
}

func EncodeEntityRelativeMove(EntityId int32, Dx int16, Dy int16, Dz int16, OnGround bool) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(EntityId), 32)
	b.WriteFmt("hhh?", Dx, Dy, Dz, OnGround)
	return b.Bytes()
}

type SpawnPlayer struct {
	EntityId int32
	Uuid     uuid.UUID
	X        float64
	Y        float64
	Z        float64
	Yaw      float64
	Pitch    float64
	Metadata EntityMetadata
}

func ReadSpawnPlayer(b *buf.Buf) (SpawnPlayer, error) {
	var v SpawnPlayer
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.EntityId = int32(_v)
	_v1, err := b.ReadUUID()
	if err != nil {
		return v, err
	}
	v.Uuid = _v1
	_fields, err := b.ReadFmt("ddd")
	if err != nil {
		return v, err
	}
	v.X = _fields[0].(float64)
	v.Y = _fields[1].(float64)
	v.Z = _fields[2].(float64)
	_v2, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Yaw = _v2
	_v3, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Pitch = _v3
	_v4, err := ReadEntityMetadata(b)
	if err != nil {
		return v, err
	}
	v.Metadata = _v4
	return v, nil
}

func EncodeSpawnPlayer(EntityId int32, Uuid uuid.UUID, X float64, Y float64, Z float64, Yaw float64, Pitch float64, Metadata EntityMetadata) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(EntityId), 32)
	b.WriteUUID(Uuid)
	b.WriteFmt("ddd", X, Y, Z)
	b.WriteAngle(Yaw)
	b.WriteAngle(Pitch)
	Metadata.WriteEntityMetadata(b)
	return b.Bytes()
}

type SpawnObject struct {
	EntityId   int32
	ObjectUuid uuid.UUID
	Kind       int8
	X          float64
	Y          float64
	Z          float64
	Pitch      float64
	Yaw        float64
	Data       int32
	Vx         int16
	Vy         int16
	Vz         int16
}

func ReadSpawnObject(b *buf.Buf) (SpawnObject, error) {
	var v SpawnObject
	_v, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.EntityId = int32(_v)
	_v1, err := b.ReadUUID()
	if err != nil {
		return v, err
	}
	v.ObjectUuid = _v1
	_fields, err := b.ReadFmt("bddd")
	if err != nil {
		return v, err
	}
	v.Kind = _fields[0].(int8)
	v.X = _fields[1].(float64)
	v.Y = _fields[2].(float64)
	v.Z = _fields[3].(float64)
	_v2, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Pitch = _v2
	_v3, err := b.ReadAngle()
	if err != nil {
		return v, err
	}
	v.Yaw = _v3
	_fields1, err := b.ReadFmt("i")
	if err != nil {
		return v, err
	}
	v.Data = _fields1[0].(int32)
	if v.Data != 0 {
		_fields2, err := b.ReadFmt("hhh")
		if err != nil {
			return v, err
		}
		v.Vx = _fields2[0].(int16)
		v.Vy = _fields2[1].(int16)
		v.Vz = _fields2[2].(int16)
	}
	return v, nil
}

func EncodeSpawnObject(EntityId int32, ObjectUuid uuid.UUID, Kind int8, X float64, Y float64, Z float64, Pitch float64, Yaw float64, Data int32, Vx int16, Vy int16, Vz int16) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(EntityId), 32)
	b.WriteUUID(ObjectUuid)
	b.WriteFmt("bddd", Kind, X, Y, Z)
	b.WriteAngle(Pitch)
	b.WriteAngle(Yaw)
	b.WriteFmt("i", Data)
	if Data != 0 {
		b.WriteFmt("hhh", Vx, Vy, Vz)
	}
	return b.Bytes()
}

type UpdateBlockEntity struct {
	Location buf.Position
	Action   uint8
	NbtData  nbt.Tag
}

func ReadUpdateBlockEntity(b *buf.Buf) (UpdateBlockEntity, error) {
	var v UpdateBlockEntity
	_v, err := b.ReadPosition()
	if err != nil {
		return v, err
	}
	v.Location = _v
	_fields, err := b.ReadFmt("B")
	if err != nil {
		return v, err
	}
	v.Action = _fields[0].(uint8)
	_v1, err := nbt.Read(b)
	if err != nil {
		return v, err
	}
	v.NbtData = _v1
	return v, nil
}

func EncodeUpdateBlockEntity(Location buf.Position, Action uint8, NbtData nbt.Tag) []byte {
	b := buf.NewEmpty()
	b.WritePosition(Location)
	b.WriteFmt("B", Action)
	nbt.Write(b, NbtData)
	return b.Bytes()
}

type WindowItems struct {
	WindowId uint8
	Slots    []Slot
}

func ReadWindowItems(b *buf.Buf) (WindowItems, error) {
	var v WindowItems
	_fields, err := b.ReadFmt("B")
	if err != nil {
		return v, err
	}
	v.WindowId = _fields[0].(uint8)
	_count, err := b.ReadFmt("h")
	if err != nil {
		return v, err
	}
	_n := int64(_count[0].(int16))
	v.Slots = make([]Slot, _n)
	for _i := int64(0); _i < _n; _i++ {
		_v, err := ReadSlot(b)
		if err != nil {
			return v, err
		}
		v.Slots[_i] = _v
	}
	return v, nil
}

func EncodeWindowItems(WindowId uint8, Slots []Slot) []byte {
	b := buf.NewEmpty()
	b.WriteFmt("B", WindowId)
	b.WriteFmt("h", int16(len(Slots)))
	for _, _x := range Slots {
		_x.WriteSlot(b)
	}
	return b.Bytes()
}

type BlockExtra struct {
	Data int32
}

func ReadBlockExtra(b *buf.Buf, tag_present int64) (BlockExtra, error) {
	var v BlockExtra
	if tag_present == 1 {
		_v, err := b.ReadVarInt(32)
		if err != nil {
			return v, err
		}
		v.Data = int32(_v)
	}
	return v, nil
}

type BlockUpdate struct {
	Location buf.Position
	BlockId  int64
	Extra    BlockExtra
}

func ReadBlockUpdate(b *buf.Buf, ctx int64) (BlockUpdate, error) {
	var v BlockUpdate
	_v, err := b.ReadPosition()
	if err != nil {
		return v, err
	}
	v.Location = _v
	_v1, err := b.ReadVarInt(64)
	if err != nil {
		return v, err
	}
	v.BlockId = _v1
	_v2, err := ReadBlockExtra(b, v.BlockId)
	if err != nil {
		return v, err
	}
	v.Extra = _v2
	return v, nil
}

type PlayerListEntry struct {
	Name        string
	Uuid        uuid.UUID
	DisplayName *string
}

func ReadPlayerListEntry(b *buf.Buf) (PlayerListEntry, error) {
	var v PlayerListEntry
	_v, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.Name = _v
	_v1, err := b.ReadUUID()
	if err != nil {
		return v, err
	}
	v.Uuid = _v1
	if ok, err := b.ReadBool(); err != nil {
		return v, err
	} else if ok {
		var _opt string
		_v2, err := b.ReadStr()
		if err != nil {
			return v, err
		}
		_opt = _v2
		v.DisplayName = &_opt
	}
	return v, nil
}

func EncodePlayerListEntry(Name string, Uuid uuid.UUID, DisplayName *string) []byte {
	b := buf.NewEmpty()
	b.WriteStr(Name)
	b.WriteUUID(Uuid)
	if DisplayName == nil {
		b.WriteBool(false)
	} else {
		b.WriteBool(true)
		b.WriteStr(*DisplayName)
	}
	return b.Bytes()
}

type Blob struct {
	Checksum uint32
	Flags    uint64
	Marker   uint8
	Payload  []byte
}

func ReadBlob(b *buf.Buf) (Blob, error) {
	var v Blob
	_fields, err := b.ReadFmt("IQB")
	if err != nil {
		return v, err
	}
	v.Checksum = _fields[0].(uint32)
	v.Flags = _fields[1].(uint64)
	v.Marker = _fields[2].(uint8)
	_count, err := b.ReadFmt("B")
	if err != nil {
		return v, err
	}
	_n := int64(_count[0].(uint8))
	v.Payload, err = b.ReadN(int(_n))
	if err != nil {
		return v, err
	}
	return v, nil
}

func EncodeBlob(Checksum uint32, Flags uint64, Marker uint8, Payload []byte) []byte {
	b := buf.NewEmpty()
	b.WriteFmt("IQB", Checksum, Flags, Marker)
	b.WriteFmt("B", uint8(len(Payload)))
	b.WriteLeft(Payload)
	return b.Bytes()
}
