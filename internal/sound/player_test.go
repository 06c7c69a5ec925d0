package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnRecorder struct {
	warnings []string
}

func (w *warnRecorder) Debug(component, message string, fields map[string]interface{}) {}
func (w *warnRecorder) Info(component, message string, fields map[string]interface{})  {}
func (w *warnRecorder) Warning(component, message string, fields map[string]interface{}) {
	w.warnings = append(w.warnings, message)
}
func (w *warnRecorder) Error(component string, err error, fields map[string]interface{}) {}

func TestMissingSoundFileDisablesPlayer(t *testing.T) {
	rec := &warnRecorder{}
	player := NewBeepPlayer(filepath.Join(t.TempDir(), "tip_sound.wav"), rec)

	assert.NotPanics(t, player.Play)
	assert.NotPanics(t, player.Play)

	assert.True(t, player.disabled)
	assert.Len(t, rec.warnings, 1)
	assert.NotPanics(t, player.Shutdown)
}

func TestUndecodableSoundFileDisablesPlayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tip_sound.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))
	rec := &warnRecorder{}
	player := NewBeepPlayer(path, rec)

	player.Play()

	assert.True(t, player.disabled)
	assert.Len(t, rec.warnings, 1)
}

func TestNopPlayer(t *testing.T) {
	var p Player = NopPlayer{}
	assert.NotPanics(t, func() {
		p.Play()
		p.Shutdown()
	})
}
