package system

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsWatcherPollsEveryInterval(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	_, label := spawnLabel(t, w, cfg.SettingsLabel, "90")
	session := zoom.NewSession()
	clk := clock.NewMock()
	watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)

	clk.Add(499 * time.Millisecond)
	watcher.Update(w)
	assert.Equal(t, zoom.DefaultBaseline, session.Baseline)

	clk.Add(time.Millisecond)
	watcher.Update(w)
	assert.Equal(t, 90.0, session.Baseline)

	label.Value = "100"
	clk.Add(100 * time.Millisecond)
	watcher.Update(w)
	assert.Equal(t, 90.0, session.Baseline, "timer restarted at the last poll")

	clk.Add(400 * time.Millisecond)
	watcher.Update(w)
	assert.Equal(t, 100.0, session.Baseline)
}

func TestSettingsWatcherSkips(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"not a number", "ninety"},
		{"percent", "90%"},
		{"nan", "NaN"},
		{"infinite", "+Inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spawnLabel(t, w, cfg.SettingsLabel, tc.text)
			session := zoom.NewSession()
			clk := clock.NewMock()
			watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)

			clk.Add(time.Second)
			watcher.Update(w)
			assert.Equal(t, zoom.DefaultBaseline, session.Baseline)
			assert.False(t, session.BaselineSet())
		})
	}
}

func TestSettingsWatcherTrimsWhitespace(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	spawnLabel(t, w, cfg.SettingsLabel, " 82.5 ")
	session := zoom.NewSession()
	clk := clock.NewMock()
	watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)

	clk.Add(cfg.SettingsPollInterval)
	watcher.Update(w)
	assert.Equal(t, 82.5, session.Baseline)
}

func TestSettingsWatcherMissingLabel(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	session := zoom.NewSession()
	clk := clock.NewMock()
	watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)

	clk.Add(time.Second)
	watcher.Update(w)
	assert.False(t, session.BaselineSet())

	spawnLabel(t, w, cfg.SettingsLabel, "88")
	clk.Add(cfg.SettingsPollInterval)
	watcher.Update(w)
	assert.Equal(t, 88.0, session.Baseline)
}

func TestSettingsWatcherUnchangedText(t *testing.T) {
	cfg := config.Default()
	cfg.EnableAnimation = false
	w := ecs.NewWorld()
	spawnLabel(t, w, cfg.SettingsLabel, "90")
	spawnCamera(t, w, cfg.CameraName, 75)
	session := zoom.NewSession()
	NewCameraBinderSystem(session, snapshot(cfg), nil).Update(w)
	clk := clock.NewMock()
	watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)

	clk.Add(cfg.SettingsPollInterval)
	watcher.Update(w)
	require.Equal(t, 90.0, session.Camera.FieldOfView)

	// the camera drifts (zoom, scroll); the same label text is not republished
	session.Target = 40
	session.Camera.FieldOfView = 40
	clk.Add(cfg.SettingsPollInterval)
	watcher.Update(w)
	assert.Equal(t, 40.0, session.Camera.FieldOfView)
	assert.Equal(t, 40.0, session.Target)
}

func TestSettingsWatcherPublishesToBoundCamera(t *testing.T) {
	tests := []struct {
		name      string
		animate   bool
		wantFOV   float64
		wantTgt   float64
		wantBasel float64
	}{
		{"instant", false, 90, 90, 90},
		{"animated", true, 75, 90, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.EnableAnimation = tc.animate
			w := ecs.NewWorld()
			spawnLabel(t, w, cfg.SettingsLabel, "90")
			spawnCamera(t, w, cfg.CameraName, 75)
			session := zoom.NewSession()
			NewCameraBinderSystem(session, snapshot(cfg), nil).Update(w)
			require.True(t, session.Bound())

			clk := clock.NewMock()
			watcher := NewSettingsWatcher(session, snapshot(cfg), clk, nil)
			clk.Add(cfg.SettingsPollInterval)
			watcher.Update(w)

			assert.Equal(t, tc.wantBasel, session.Baseline)
			assert.Equal(t, tc.wantTgt, session.Target)
			assert.Equal(t, tc.wantFOV, session.Camera.FieldOfView)
		})
	}
}

func TestPauseStartsWatcherThatReadsSettings(t *testing.T) {
	cfg := config.Default()
	cfg.EnableAnimation = false
	w := ecs.NewWorld()
	ts := spawnClock(t, w)
	spawnCamera(t, w, cfg.CameraName, 75)
	_, label := spawnLabel(t, w, cfg.SettingsLabel, "75")

	session := zoom.NewSession()
	binder := NewCameraBinderSystem(session, snapshot(cfg), nil)
	clk := clock.NewMock()
	runner := ecs.NewRunner()
	monitor := NewPauseMonitor(runner, func() ecs.System {
		return NewSettingsWatcher(session, snapshot(cfg), clk, nil)
	}, nil)
	runner.Start(monitor)

	frame := func() {
		binder.Update(w)
		runner.Update(w)
		clk.Add(100 * time.Millisecond)
	}

	frame()
	ts.Scale = 0
	label.Value = "110"
	for i := 0; i < 4; i++ {
		frame()
	}
	assert.Equal(t, 75.0, session.Baseline)

	for i := 0; i < 3; i++ {
		frame()
	}
	assert.Equal(t, 110.0, session.Baseline)
	assert.Equal(t, 110.0, session.Camera.FieldOfView)

	ts.Scale = 1
	frame()
	label.Value = "60"
	for i := 0; i < 20; i++ {
		frame()
	}
	assert.Equal(t, 110.0, session.Baseline, "no watcher while running")
}
