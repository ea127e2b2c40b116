package playback_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/metrics"
	"github.com/san-kum/ndviplay/internal/normalize"
	"github.com/san-kum/ndviplay/internal/playback"
)

var _ = Describe("Controller", func() {
	var (
		ctx   context.Context
		clock *fakeClock
		seq   playback.Sequence
		opts  playback.Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = &fakeClock{now: epoch}
		seq = playback.Sequence{"a.jpg", "bb.jpg", "ccc.jpg"}
		opts = playback.DefaultOptions()
		opts.Clock = clock
	})

	newController := func(surface playback.Surface) *playback.Controller {
		c, err := playback.New(seq, gradientDecoder(6, 4), surface, opts)
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	Describe("New", func() {
		It("rejects an empty sequence", func() {
			_, err := playback.New(nil, gradientDecoder(2, 2), newScriptedSurface(clock), opts)
			Expect(err).To(MatchError(frame.ErrNoFrames))
		})

		It("fills in defaults for zero options", func() {
			c, err := playback.New(seq, gradientDecoder(2, 2), newScriptedSurface(clock), playback.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.State().Cursor).To(Equal(0))
		})
	})

	Describe("advancing", func() {
		It("moves the cursor once per elapsed wait and wraps", func() {
			surface := newScriptedSurface(clock)
			c := newController(surface)

			var cursors []int
			for i := 0; i < 5; i++ {
				c.Step(ctx)
				cursors = append(cursors, c.State().Cursor)
				Expect(clock.Elapsed()).To(Equal(time.Duration(i+1) * opts.Interval))
			}
			Expect(cursors).To(Equal([]int{1, 2, 0, 1, 2}))
		})

		It("keeps the total wait fixed when ignored keys arrive", func() {
			surface := newScriptedSurface(clock,
				event{at: 300 * time.Millisecond, key: "x"},
				event{at: 1200 * time.Millisecond, key: "z"},
			)
			c := newController(surface)

			c.Step(ctx)
			Expect(clock.Elapsed()).To(Equal(2 * time.Second))
			Expect(c.State().Cursor).To(Equal(1))
			Expect(surface.waits).To(Equal([]time.Duration{
				2 * time.Second,
				1700 * time.Millisecond,
				800 * time.Millisecond,
			}))
		})

		It("shows the index and difference views every cycle", func() {
			surface := newScriptedSurface(clock)
			c := newController(surface)

			c.Step(ctx)
			Expect(surface.shown).To(HaveKey(playback.DefaultIndexWindow))
			Expect(surface.shown).To(HaveKey(playback.DefaultDiffWindow))
			Expect(surface.shown[playback.DefaultIndexWindow].Width).To(Equal(6))
			Expect(surface.shown[playback.DefaultDiffWindow].Height).To(Equal(4))
		})

		It("renders the first difference view from the index itself", func() {
			surface := newScriptedSurface(clock)
			c := newController(surface)

			c.Render()
			index := surface.shown[playback.DefaultIndexWindow]
			diff := surface.shown[playback.DefaultDiffWindow]
			Expect(diff.Pix).To(Equal(index.Pix))
		})

		It("retains the index field for the next difference", func() {
			c := newController(newScriptedSurface(clock))
			res := c.Render()
			Expect(c.State().Last).To(BeIdenticalTo(res.Index))
		})
	})

	Describe("quit", func() {
		DescribeTable("ends the wait immediately",
			func(key playback.Key) {
				surface := newScriptedSurface(clock, event{at: 500 * time.Millisecond, key: key})
				c := newController(surface)

				Expect(c.Run(ctx)).To(Succeed())
				Expect(c.State().Done).To(BeTrue())
				Expect(c.State().Cursor).To(Equal(0))
				Expect(clock.Elapsed()).To(Equal(500 * time.Millisecond))
			},
			Entry("lower case", playback.Key("q")),
			Entry("upper case", playback.Key("Q")),
			Entry("closed surface", playback.KeyClosed),
		)

		It("stops on context cancellation", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			c := newController(newScriptedSurface(clock))

			Expect(c.Run(cctx)).To(Succeed())
			Expect(c.State().Done).To(BeTrue())
			Expect(clock.Elapsed()).To(BeZero())
		})

		It("works with surfaces that do not report status", func() {
			surface := &plainSurface{}
			c := newController(surface)

			Expect(c.Run(ctx)).To(Succeed())
			Expect(surface.shows).To(Equal(2))
		})
	})

	Describe("baseline selection", func() {
		It("switches to baseline mode on the next cycle", func() {
			surface := newScriptedSurface(clock, event{at: 100 * time.Millisecond, key: "b"})
			surface.picks = []frame.Region{frame.NewRegion(1, 1, 2, 2)}
			c := newController(surface)

			c.Step(ctx)
			Expect(surface.pickedOn).To(Equal([]string{playback.DefaultIndexWindow}))
			Expect(c.State().Region).To(Equal(frame.NewRegion(1, 1, 2, 2)))
			Expect(clock.Elapsed()).To(Equal(opts.Interval))

			c.Step(ctx)
			Expect(surface.statuses[0].Mode).To(Equal(normalize.Global))
			Expect(surface.statuses[1].Mode).To(Equal(normalize.Baseline))
			Expect(surface.statuses[1].Region.IsSet()).To(BeTrue())
		})

		It("replaces a previous region with a new one", func() {
			surface := newScriptedSurface(clock,
				event{at: 100 * time.Millisecond, key: "b"},
				event{at: 200 * time.Millisecond, key: "b"},
			)
			surface.picks = []frame.Region{frame.NewRegion(0, 0, 1, 1), frame.NewRegion(2, 2, 3, 1)}
			c := newController(surface)

			c.Step(ctx)
			Expect(c.State().Region).To(Equal(frame.NewRegion(2, 2, 3, 1)))
		})

		It("clears the region on an empty pick by default", func() {
			surface := newScriptedSurface(clock,
				event{at: 100 * time.Millisecond, key: "b"},
				event{at: 200 * time.Millisecond, key: "b"},
			)
			surface.picks = []frame.Region{frame.NewRegion(0, 0, 2, 2), frame.Unset}
			c := newController(surface)

			c.Step(ctx)
			Expect(c.State().Region.IsSet()).To(BeFalse())
		})

		It("keeps the region on an empty pick when configured", func() {
			opts.EmptySelection = playback.KeepOnEmpty
			surface := newScriptedSurface(clock,
				event{at: 100 * time.Millisecond, key: "b"},
				event{at: 200 * time.Millisecond, key: "b"},
			)
			surface.picks = []frame.Region{frame.NewRegion(0, 0, 2, 2), frame.Unset}
			c := newController(surface)

			c.Step(ctx)
			Expect(c.State().Region).To(Equal(frame.NewRegion(0, 0, 2, 2)))
		})
	})

	Describe("hold", func() {
		It("is not bound by default", func() {
			surface := newScriptedSurface(clock, event{at: 100 * time.Millisecond, key: "h"})
			c := newController(surface)

			c.Step(ctx)
			Expect(c.State().Hold).To(BeFalse())
			Expect(c.State().Cursor).To(Equal(1))
		})

		It("freezes and resumes the cursor when bound", func() {
			opts.Keymap = playback.NewKeymap([]string{"q"}, []string{"b"}, []string{"h"})
			surface := newScriptedSurface(clock,
				event{at: 100 * time.Millisecond, key: "h"},
				event{at: 4100 * time.Millisecond, key: "h"},
			)
			c := newController(surface)

			c.Step(ctx)
			Expect(c.State().Hold).To(BeTrue())
			Expect(c.State().Cursor).To(Equal(0))

			c.Step(ctx)
			Expect(c.State().Cursor).To(Equal(0))

			c.Step(ctx)
			Expect(c.State().Hold).To(BeFalse())
			Expect(c.State().Cursor).To(Equal(1))
		})
	})

	Describe("status", func() {
		It("reports position and metrics", func() {
			surface := newScriptedSurface(clock)
			c := newController(surface)
			c.AddMetric(metrics.NewMean())

			c.Step(ctx)
			c.Render()
			st := surface.lastStatus()
			Expect(st.Path).To(Equal("bb.jpg"))
			Expect(st.Cursor).To(Equal(1))
			Expect(st.Len).To(Equal(3))
			Expect(st.Metrics).To(HaveKey("mean"))
			Expect(st.Help).To(ContainSubstring("baseline"))
		})
	})

	Describe("unreadable frames", func() {
		It("shows empty views and keeps playing", func() {
			surface := newScriptedSurface(clock)
			c, err := playback.New(seq, brokenDecoder(), surface, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(func() { c.Step(ctx) }).NotTo(Panic())
			Expect(surface.shown[playback.DefaultIndexWindow].Empty()).To(BeTrue())
			Expect(c.State().Cursor).To(Equal(1))
		})
	})
})

var _ = Describe("Keymap", func() {
	It("binds quit and baseline by default", func() {
		km := playback.DefaultKeymap()
		Expect(km.Lookup("q")).To(Equal(playback.CmdQuit))
		Expect(km.Lookup("Q")).To(Equal(playback.CmdQuit))
		Expect(km.Lookup("b")).To(Equal(playback.CmdBaseline))
		Expect(km.Lookup("B")).To(Equal(playback.CmdNone))
		Expect(km.Lookup(playback.KeyClosed)).To(Equal(playback.CmdQuit))
	})

	It("renders help", func() {
		Expect(playback.DefaultKeymap().Help()).To(Equal("Q/q:quit b:baseline"))
	})

	DescribeTable("parses selection policies",
		func(in string, expected playback.SelectionPolicy, ok bool) {
			p, err := playback.ParseSelectionPolicy(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(expected))
		},
		Entry("default", "", playback.ClearOnEmpty, true),
		Entry("clear", "clear", playback.ClearOnEmpty, true),
		Entry("keep", "KEEP", playback.KeepOnEmpty, true),
		Entry("unknown", "sometimes", playback.ClearOnEmpty, false),
	)
})

var _ = Describe("Sequence", func() {
	It("wraps around", func() {
		s := playback.Sequence{"x", "y", "z"}
		Expect(s.Next(0)).To(Equal(1))
		Expect(s.Next(2)).To(Equal(0))
	})
})
