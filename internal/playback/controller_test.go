package playback_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stepviz/internal/algo/sorting"
	"github.com/san-kum/stepviz/internal/playback"
	"github.com/san-kum/stepviz/internal/step"
)

func sequenceOf(n int) step.Sequence {
	steps := make([]step.Step, n)
	for i := range steps {
		steps[i] = &step.ArrayStep{Meta: step.Meta{Message: fmt.Sprintf("step %d", i)}, Pivot: -1, Found: -1}
	}
	return step.FromSteps(steps...)
}

var _ = Describe("Controller", func() {
	var (
		sched *playback.ManualScheduler
		c     *playback.Controller
	)

	BeforeEach(func() {
		sched = &playback.ManualScheduler{}
		c = playback.New(playback.WithScheduler(sched), playback.WithSpeed(100*time.Millisecond))
	})

	Context("when nothing is loaded", func() {
		It("starts idle with no current step", func() {
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Current()).To(BeNil())
		})

		It("ignores transport controls", func() {
			c.Play()
			c.Seek(3)
			c.StepForward()
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Cursor()).To(Equal(0))
			Expect(sched.Armed()).To(Equal(0))
		})

		It("stays idle on reset", func() {
			c.Reset()
			Expect(c.State()).To(Equal(playback.Idle))
		})
	})

	Context("with a 10-step sequence loaded", func() {
		BeforeEach(func() {
			c.Load(sequenceOf(10))
		})

		It("parks at the first step", func() {
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(0))
			Expect(c.Current().Info().Message).To(Equal("step 0"))
		})

		It("clamps out-of-range seeks", func() {
			c.Seek(-5)
			Expect(c.Cursor()).To(Equal(0))
			c.Seek(999)
			Expect(c.Cursor()).To(Equal(9))
			Expect(c.Current().Info().Message).To(Equal("step 9"))
		})

		It("visits every cursor exactly once while playing, then auto-stops", func() {
			var seen []int
			c.OnChange(func(s playback.Snapshot) { seen = append(seen, s.Cursor) })

			c.Play()
			Expect(c.State()).To(Equal(playback.Playing))
			for c.State() == playback.Playing {
				Expect(sched.Tick()).To(Equal(1))
			}

			Expect(seen).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(9))
			Expect(sched.Active()).To(Equal(0))
		})

		It("does not loop past the end", func() {
			c.Seek(9)
			c.Play()
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(sched.Tick()).To(Equal(0))
			Expect(c.Cursor()).To(Equal(9))
		})

		It("resumes from the exact paused cursor", func() {
			c.Play()
			sched.Tick()
			sched.Tick()
			sched.Tick()
			c.Pause()
			Expect(c.Cursor()).To(Equal(3))
			Expect(sched.Active()).To(Equal(0))

			Expect(sched.Tick()).To(Equal(0))
			Expect(c.Cursor()).To(Equal(3))

			c.Play()
			sched.Tick()
			Expect(c.Cursor()).To(Equal(4))
		})

		It("treats pause as a no-op when already paused", func() {
			c.Pause()
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(0))
		})

		It("pauses when seeking during playback", func() {
			c.Play()
			sched.Tick()
			c.Seek(6)
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(6))
			Expect(sched.Active()).To(Equal(0))
		})

		It("steps forward and back with clamping", func() {
			c.StepBack()
			Expect(c.Cursor()).To(Equal(0))
			c.StepForward()
			c.StepForward()
			Expect(c.Cursor()).To(Equal(2))
			c.Seek(9)
			c.StepForward()
			Expect(c.Cursor()).To(Equal(9))
		})

		It("re-arms the timer on speed change without moving the cursor", func() {
			c.Play()
			sched.Tick()
			armed := sched.Armed()

			c.SetSpeed(20 * time.Millisecond)

			Expect(c.Cursor()).To(Equal(1))
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(sched.Armed()).To(Equal(armed + 1))
			Expect(sched.Active()).To(Equal(1))
			Expect(sched.Interval()).To(Equal(20 * time.Millisecond))

			sched.Tick()
			Expect(c.Cursor()).To(Equal(2))
		})

		It("ignores non-positive speeds", func() {
			c.SetSpeed(0)
			c.SetSpeed(-time.Second)
			Expect(c.Speed()).To(Equal(100 * time.Millisecond))
		})

		It("changes speed while paused without arming a timer", func() {
			c.SetSpeed(time.Second)
			Expect(c.Speed()).To(Equal(time.Second))
			Expect(sched.Armed()).To(Equal(0))
		})

		It("resets to the first step", func() {
			c.Play()
			sched.Tick()
			sched.Tick()
			c.Reset()
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(0))
			Expect(sched.Active()).To(Equal(0))
		})

		It("replaces the session on load", func() {
			c.Play()
			sched.Tick()
			c.Load(sequenceOf(3))
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(c.Cursor()).To(Equal(0))
			Expect(c.Len()).To(Equal(3))
			Expect(sched.Active()).To(Equal(0))
		})

		It("never holds more than one live timer", func() {
			ops := []func(){
				c.Play, c.Play, func() { c.SetSpeed(10 * time.Millisecond) }, c.Toggle, c.Toggle,
				func() { c.Seek(2) }, c.Play, func() { c.SetSpeed(30 * time.Millisecond) }, c.Reset, c.Play,
			}
			for _, op := range ops {
				op()
				Expect(sched.Active()).To(BeNumerically("<=", 1))
				sched.Tick()
				Expect(sched.Active()).To(BeNumerically("<=", 1))
			}
		})

		It("treats play on a one-step sequence as a no-op", func() {
			c.Load(sequenceOf(1))
			c.Play()
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(sched.Armed()).To(Equal(0))
		})
	})

	Context("with a materialized producer", func() {
		It("ends on the fully sorted step", func() {
			c.Load(step.Materialize(sorting.Bubble([]int{5, 3, 1, 4, 2})))
			c.Play()
			for c.State() == playback.Playing {
				sched.Tick()
			}
			last := c.Current().(*step.ArrayStep)
			Expect(last.Array).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(last.Sorted).To(Equal([]int{0, 1, 2, 3, 4}))
		})
	})

	It("returns to idle on close", func() {
		c.Load(sequenceOf(4))
		c.Play()
		c.Close()
		Expect(c.State()).To(Equal(playback.Idle))
		Expect(sched.Active()).To(Equal(0))
		Expect(c.Current()).To(BeNil())
	})
})
