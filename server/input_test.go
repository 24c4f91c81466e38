package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonearena/game"
)

func TestParseInput(t *testing.T) {
	defaults := game.Settings{Quality: game.QualityMedium}
	tests := []struct {
		name string
		raw  string
		want Input
	}{
		{"start uses defaults", `{"type":"start"}`, Input{Control: CtrlStart, Settings: defaults}},
		{"start overrides", `{"type":"start","quality":3,"hardcore":true}`,
			Input{Control: CtrlStart, Settings: game.Settings{Quality: game.QualityUltra, Hardcore: true}}},
		{"start bad quality keeps default", `{"type":"start","quality":7}`, Input{Control: CtrlStart, Settings: defaults}},
		{"menu", `{"type":"MENU"}`, Input{Control: CtrlMenu}},
		{"key down", `{"type":"key","key":"KeyW","down":true}`, Input{Event: game.Event{Kind: game.EventKeyDown, Key: game.KeyForward, Code: "keyw"}}},
		{"key up", `{"type":"key","key":"ShiftLeft"}`, Input{Event: game.Event{Kind: game.EventKeyUp, Key: game.KeySprint, Code: "shiftleft"}}},
		{"look", `{"type":"look","dx":12,"dy":-3}`, Input{Event: game.Look(12, -3)}},
		{"capture", `{"type":"capture","held":true}`, Input{Event: game.Capture(true)}},
		{"fire", `{"type":"fire"}`, Input{Event: game.FireEvent()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInput([]byte(tt.raw), defaults)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInput_Rejects(t *testing.T) {
	for _, raw := range []string{
		``,
		`not json`,
		`{"type":"teleport"}`,
		`{"type":"key","key":"KeyQ","down":true}`,
	} {
		_, ok := ParseInput([]byte(raw), game.DefaultSettings())
		assert.False(t, ok, raw)
	}
}

func TestEncodeDecode(t *testing.T) {
	b, err := Encode(MsgEliminated, Eliminated{EnemiesRemaining: 3, AmmoLeft: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"eliminated","data":{"enemiesRemaining":3,"ammoLeft":7}}`, string(b))

	env, err := DecodeEnvelope(b)
	require.NoError(t, err)
	got, err := DecodePayload[Eliminated](env)
	require.NoError(t, err)
	assert.Equal(t, Eliminated{EnemiesRemaining: 3, AmmoLeft: 7}, got)

	menu, err := Encode(MsgMenu, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"menu"}`, string(menu))
	env, err = DecodeEnvelope(menu)
	require.NoError(t, err)
	_, err = DecodePayload[Welcome](env)
	assert.Error(t, err)

	_, err = Encode("", nil)
	assert.Error(t, err)
	_, err = DecodeEnvelope(nil)
	assert.Error(t, err)
	_, err = DecodeEnvelope([]byte("{"))
	assert.Error(t, err)
}
