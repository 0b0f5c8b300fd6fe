package presentation

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "intro"
)

type progressRecord struct {
	IntroSeen bool `yaml:"introSeen"`
	IntroRuns int  `yaml:"introRuns"`
}

// Progress remembers whether the intro cinematic already played on this
// machine. A nil gdata manager keeps everything in memory.
type Progress struct {
	manager *gdata.Manager
	record  progressRecord
}

func NewProgress(manager *gdata.Manager) *Progress {
	p := &Progress{manager: manager}
	if err := p.Load(); err != nil {
		log.Printf("[progress] load failed, starting fresh: %v", err)
	}
	return p
}

// Load reads the stored record. A missing record is not an error.
func (p *Progress) Load() error {
	p.record = progressRecord{}
	if p.manager == nil {
		return nil
	}
	if !p.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := p.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("progress: load: %w", err)
	}
	var rec progressRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("progress: unmarshal: %w", err)
	}
	p.record = rec
	return nil
}

func (p *Progress) IntroSeen() bool {
	if p == nil {
		return false
	}
	return p.record.IntroSeen
}

func (p *Progress) IntroRuns() int {
	if p == nil {
		return 0
	}
	return p.record.IntroRuns
}

// MarkIntroSeen records a completed intro and persists it.
func (p *Progress) MarkIntroSeen() error {
	if p == nil {
		return nil
	}
	p.record.IntroSeen = true
	p.record.IntroRuns++
	return p.save()
}

func (p *Progress) save() error {
	if p.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(p.record)
	if err != nil {
		return fmt.Errorf("progress: marshal: %w", err)
	}
	if err := p.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}
