package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffectedPrograms(t *testing.T) {
	programs := []string{ProgramGouraud, ProgramPhong, ProgramImGui}

	assert.Equal(t, []string{ProgramPhong}, AffectedPrograms([]string{"phong.frag"}, programs))
	assert.Equal(t, []string{ProgramPhong}, AffectedPrograms([]string{"phong.frag", "phong.vert"}, programs))
	assert.Equal(t, []string{ProgramGouraud, ProgramPhong}, AffectedPrograms([]string{"lighting.glsl"}, programs))
	assert.Equal(t, []string{ProgramImGui, ProgramGouraud, ProgramPhong}, AffectedPrograms([]string{"imgui.vert", "lighting.glsl", "gouraud.frag"}, programs))
	assert.Empty(t, AffectedPrograms([]string{"notes.txt", "phong.frag~"}, programs))
	assert.Empty(t, AffectedPrograms(nil, programs))
}
