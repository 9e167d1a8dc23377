package world

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("World", func() {
	var (
		bounds Bounds
		params Params
		rng    *rand.Rand
	)

	BeforeEach(func() {
		bounds = Bounds{Width: 800, Height: 600}
		params = DefaultParams()
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Describe("integration", func() {
		It("keeps every body inside the side and top walls on the frame it hits them", func() {
			g, err := NewGround(0, bounds, params.GroundOffset)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 500; i++ {
				b := Body{
					Pos:    cp.Vector{X: rng.Float64() * bounds.Width, Y: rng.Float64() * 380},
					Vel:    cp.Vector{X: rng.Float64()*60 - 30, Y: rng.Float64()*60 - 30},
					Radius: params.Radius,
					Bounce: params.Bounce,
				}
				Integrate(&b, bounds, g, params)

				Expect(b.Pos.X - b.Radius).To(BeNumerically(">=", 0))
				Expect(b.Pos.X + b.Radius).To(BeNumerically("<=", bounds.Width))
				Expect(b.Pos.Y - b.Radius).To(BeNumerically(">=", 0))
			}
		})

		It("settles a dropped body on flat ground", func() {
			g, err := NewGround(0, bounds, params.GroundOffset)
			Expect(err).NotTo(HaveOccurred())

			b := Body{Pos: cp.Vector{X: 400, Y: 60}, Radius: params.Radius, Bounce: params.Bounce}
			peak := 0.0
			for i := 0; i < 1000; i++ {
				Integrate(&b, bounds, g, params)
				if i > 500 {
					peak = math.Max(peak, math.Abs(b.Vel.Y))
				}
			}
			Expect(peak).To(BeNumerically("<", 0.5))
			Expect(b.Pos.Y + b.Radius).To(BeNumerically("~", g.YAt(b.Pos.X), 1e-6))
		})
	})

	Describe("ground", func() {
		DescribeTable("flat ground height is viewport height minus the offset",
			func(width, height float64) {
				g, err := NewGround(0, Bounds{Width: width, Height: height}, params.GroundOffset)
				Expect(err).NotTo(HaveOccurred())
				for _, x := range []float64{0, width / 3, width} {
					Expect(g.YAt(x)).To(BeNumerically("~", height-200, 1e-9))
				}
			},
			Entry("800x600", 800.0, 600.0),
			Entry("1920x1080", 1920.0, 1080.0),
			Entry("short viewport", 300.0, 150.0),
		)
	})

	Describe("pair resolution", func() {
		DescribeTable("leaves non-overlapping pairs untouched",
			func(distance float64) {
				a := Body{Pos: cp.Vector{X: 100, Y: 100}, Vel: cp.Vector{X: 1}, Radius: 12, Bounce: 0.6}
				b := Body{Pos: cp.Vector{X: 100 + distance, Y: 100}, Vel: cp.Vector{X: -1}, Radius: 12, Bounce: 0.6}
				origA, origB := a, b

				Expect(ResolvePair(&a, &b)).To(BeFalse())
				Expect(a).To(Equal(origA))
				Expect(b).To(Equal(origB))
			},
			Entry("exactly touching", 24.0),
			Entry("barely apart", 24.0001),
			Entry("far apart", 500.0),
		)

		It("is symmetric in its arguments", func() {
			a := Body{Pos: cp.Vector{X: 10, Y: 10}, Vel: cp.Vector{X: 2, Y: -1}, Radius: 12, Bounce: 0.9}
			b := Body{Pos: cp.Vector{X: 25, Y: 18}, Vel: cp.Vector{X: -3, Y: 0.5}, Radius: 12, Bounce: 0.4}

			a1, b1 := a, b
			b2, a2 := b, a
			ResolvePair(&a1, &b1)
			ResolvePair(&b2, &a2)

			Expect(a1.Pos.Distance(a2.Pos)).To(BeNumerically("<", 1e-9))
			Expect(b1.Pos.Distance(b2.Pos)).To(BeNumerically("<", 1e-9))
			Expect(a1.Vel.Distance(a2.Vel)).To(BeNumerically("<", 1e-9))
			Expect(b1.Vel.Distance(b2.Vel)).To(BeNumerically("<", 1e-9))
		})
	})

	Describe("configure", func() {
		It("replaces the whole body collection", func() {
			w := New(bounds, params, rng)
			for _, n := range []int{12, 0, 3} {
				Expect(w.Configure(Scene{Color: "#0f0", Count: n})).To(Succeed())
				w.Frame(nil)
			}
			Expect(w.Configure(Scene{Color: "#0f0", Count: 5})).To(Succeed())
			Expect(w.Snapshot().Bodies).To(HaveLen(5))
		})

		It("keeps a pile of bodies finite over a long run", func() {
			w := New(bounds, params, rng)
			Expect(w.Configure(Scene{Color: "#0f0", Count: 20, AngleDeg: 12})).To(Succeed())
			for i := 0; i < 2000; i++ {
				w.Frame(nil)
			}
			for _, b := range w.Snapshot().Bodies {
				Expect(b.IsValid()).To(BeTrue())
			}
		})
	})
})
