package system

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/simplezoom/common"
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/milk9111/simplezoom/zoom"
	"go.uber.org/zap"
)

// SettingsWatcher is a task that polls the settings menu FOV label at a fixed
// wall-clock interval and publishes new values as the session baseline.
type SettingsWatcher struct {
	session *zoom.Session
	cfg     func() config.Config
	clock   clock.Clock
	log     *zap.SugaredLogger

	lastPoll time.Time
	lastText string
}

func NewSettingsWatcher(session *zoom.Session, cfg func() config.Config, clk clock.Clock, log *zap.SugaredLogger) *SettingsWatcher {
	if clk == nil {
		clk = clock.New()
	}
	return &SettingsWatcher{
		session:  session,
		cfg:      cfg,
		clock:    clk,
		log:      common.OrNop(log).With("system", "settings_watcher"),
		lastPoll: clk.Now(),
	}
}

func (s *SettingsWatcher) Update(w *ecs.World) {
	cfg := s.cfg()
	if s.clock.Since(s.lastPoll) < cfg.SettingsPollInterval {
		return
	}
	s.lastPoll = s.clock.Now()

	text, ok := readLabel(w, cfg.SettingsLabel)
	if !ok || text == s.lastText {
		return
	}
	fov, ok := parseFOV(text)
	if !ok {
		return
	}

	s.lastText = text
	s.session.PublishBaseline(fov, cfg)
	s.log.Infow("FOV updated from settings", "fov", fov)
}

func readLabel(w *ecs.World, name string) (string, bool) {
	e, ok := ecs.FindByName(w, name)
	if !ok {
		return "", false
	}
	label, ok := ecs.Get(w, e, component.TextLabelComponent.Kind())
	if !ok || label.Source == nil {
		return "", false
	}
	return label.Source.Text(), true
}

func parseFOV(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
