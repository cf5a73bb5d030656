package scene_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imclab/casa/internal/config"
	"github.com/imclab/casa/internal/metrics"
	"github.com/imclab/casa/internal/scene"
)

// smallConfig is a fast two-automaton scene with stagnation resets off.
func smallConfig() *config.Config {
	return &config.Config{
		Seed:  42,
		Steps: 10,
		FPS:   1,
		Automatons: []config.AutomatonConfig{
			{Policy: "random_swap", Size: 8, Period: 4,
				TileW: 2, TileH: 2, FillRate: 0.5, Movements: 4},
			{Policy: "circular_sort", Size: 8, Period: 4,
				TileW: 2, TileH: 2, FillRate: 0.5},
		},
	}
}

// deadConfig seeds an empty grid, so every step changes nothing and the
// stagnation window fills immediately.
func deadConfig(window int) *config.Config {
	return &config.Config{
		Seed: 7,
		FPS:  1,
		Stagnation: config.StagnationConfig{
			Threshold: 1,
			Window:    window,
		},
		Automatons: []config.AutomatonConfig{
			{Policy: "dominant_fill", Size: 8, Period: 4,
				TileW: 2, TileH: 2, FillRate: 0},
		},
	}
}

var _ = Describe("FromConfig", func() {
	It("builds one automaton per configured entry", func() {
		s, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Automatons()).To(HaveLen(2))
		Expect(s.PolicyNames()).To(Equal([]string{"random_swap", "circular_sort"}))
	})

	It("rejects unknown policies", func() {
		cfg := smallConfig()
		cfg.Automatons[1].Policy = "spiral_sort"
		_, err := scene.FromConfig(cfg)
		Expect(err).To(MatchError(ContainSubstring("unknown policy")))
	})

	It("rejects configs that fail validation", func() {
		cfg := smallConfig()
		cfg.Automatons[0].Size = 2
		_, err := scene.FromConfig(cfg)
		Expect(err).To(HaveOccurred())
	})

	It("is deterministic for a fixed seed", func() {
		a, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())
		b, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 20; i++ {
			Expect(a.Step()).To(Succeed())
			Expect(b.Step()).To(Succeed())
			Expect(a.Sample()).To(Equal(b.Sample()))
		}
	})
})

var _ = Describe("Scene stepping", func() {
	It("aggregates changed and live counts across automatons", func() {
		s, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Step()).To(Succeed())

		changed, live := 0, 0
		for _, a := range s.Automatons() {
			changed += a.ChangedCells()
			live += a.LiveCells()
		}
		sample := s.Sample()
		Expect(sample.Step).To(Equal(1))
		Expect(sample.Changed).To(Equal(changed))
		Expect(sample.Live).To(Equal(live))
		Expect(sample.Cells).To(Equal(2 * 8 * 8))
	})

	It("feeds every registered metric once per step", func() {
		s, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())
		s.AddMetric(metrics.NewActivity())
		s.AddMetric(metrics.NewDensity())

		for i := 0; i < 5; i++ {
			Expect(s.Step()).To(Succeed())
		}

		vals := s.MetricValues()
		Expect(vals).To(HaveKey("activity"))
		Expect(vals).To(HaveKey("density"))
	})

	It("counts down to the next reorganization", func() {
		s, err := scene.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())
		a := s.Automatons()[0]

		Expect(a.StepsUntilReorganization()).To(Equal(4))
		Expect(s.Step()).To(Succeed())
		Expect(a.StepsUntilReorganization()).To(Equal(3))
		Expect(s.Step()).To(Succeed())
		Expect(s.Step()).To(Succeed())
		Expect(s.Step()).To(Succeed())
		Expect(a.StepsUntilReorganization()).To(Equal(4))
	})
})

var _ = Describe("Stagnation resets", func() {
	It("reseeds after the calm window elapses", func() {
		s, err := scene.FromConfig(deadConfig(3))
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Step()).To(Succeed())
		Expect(s.Step()).To(Succeed())
		Expect(s.Resets()).To(Equal(0))

		Expect(s.Step()).To(Succeed())
		Expect(s.Resets()).To(Equal(1))

		// The reseeded grid is still empty, so the scene stagnates again.
		Expect(s.Step()).To(Succeed())
		Expect(s.Step()).To(Succeed())
		Expect(s.Step()).To(Succeed())
		Expect(s.Resets()).To(Equal(2))
	})

	It("never reseeds when the window is zero", func() {
		s, err := scene.FromConfig(deadConfig(0))
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 50; i++ {
			Expect(s.Step()).To(Succeed())
		}
		Expect(s.Resets()).To(Equal(0))
	})
})
