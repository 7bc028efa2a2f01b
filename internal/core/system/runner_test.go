package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }

func (r recorder) Update(time.Duration) { *r.log = append(*r.log, r.name) }

func TestRunner_PhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"render", PhaseRender, &log})
	r.Register(recorder{"flush", PhaseCleanup, &log})
	r.Register(recorder{"tick", PhaseUpdate, &log})
	r.Register(recorder{"input", PhaseInput, &log})
	r.Register(recorder{"tick2", PhaseUpdate, &log})

	r.Tick(time.Second / 60)
	assert.Equal(t, []string{"input", "tick", "tick2", "flush", "render"}, log)
}

func TestRunner_TickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"tick", PhaseUpdate, &log})
	r.Register(recorder{"render", PhaseRender, &log})

	r.TickPhase(PhaseRender, 0)
	assert.Equal(t, []string{"render"}, log)
	assert.Equal(t, "cleanup", PhaseCleanup.String())
}
