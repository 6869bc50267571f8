package scene_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/san-kum/warp/internal/config"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/gpu/gputest"
	"github.com/san-kum/warp/internal/input"
	"github.com/san-kum/warp/internal/scene"
	"github.com/san-kum/warp/internal/surface"
)

func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Grid.Resolution = 10
	cfg.Sphere.Sectors = 8
	cfg.Sphere.Stacks = 6
	return *cfg
}

var _ = Describe("Scene", func() {
	var (
		dev *gputest.Recorder
		cfg config.Config
		s   *scene.Scene
		out *gbytes.Buffer
	)

	BeforeEach(func() {
		dev = gputest.NewRecorder()
		cfg = smallConfig()
		out = gbytes.NewBuffer()
	})

	JustBeforeEach(func() {
		var err error
		s, err = scene.New(cfg, dev, nil)
		Expect(err).NotTo(HaveOccurred())
		s.SetOutput(out)
	})

	Describe("construction", func() {
		It("uploads the body and the initial surface", func() {
			Expect(dev.Count("CompileProgram")).To(Equal(1))
			Expect(dev.Count("GenBuffer")).To(Equal(3))
			Expect(s.Simulator().Surface().Allocated()).To(BeTrue())
			Expect(s.Simulator().Surface().Resident()).To(Equal(121))
		})

		It("places the body at the start of the orbit", func() {
			Expect(s.Simulator().BodyPos().X).To(BeNumerically("~", 3, 1e-12))
			Expect(s.Simulator().BodyPos().Z).To(BeNumerically("~", 0, 1e-12))
		})

		Context("with the floor program enabled", func() {
			BeforeEach(func() { cfg.Render.FloorProgram = true })

			It("compiles both programs", func() {
				Expect(dev.Count("CompileProgram")).To(Equal(2))
			})
		})
	})

	Describe("a frame", func() {
		It("advances the orbit and redraws", func() {
			dev.Reset()
			Expect(s.Frame(input.Frame{})).To(BeTrue())

			Expect(s.Simulator().Orbit().Angle).To(BeNumerically("~", 0.002, 1e-15))
			Expect(dev.Count("DrawElements")).To(Equal(1))
			Expect(dev.Count("DrawArrays")).To(Equal(1))

			want := surface.Regenerate(cfg.GridSpec(), s.Simulator().BodyPos(), cfg.BodySpec())
			Expect(s.Simulator().Surface().Samples()).To(Equal(want))
		})

		It("reuses the surface buffer", func() {
			for i := 0; i < 10; i++ {
				s.Frame(input.Frame{})
			}
			Expect(dev.Count("GenBuffer")).To(Equal(3))
			Expect(dev.Count("BufferSubData")).To(BeNumerically(">=", 10))
		})

		It("uploads exactly what was regenerated", func() {
			s.Frame(input.Frame{})
			var vbo uint32
			for h, b := range dev.Buffers {
				if len(b) == 121*12 {
					vbo = h
				}
			}
			Expect(vbo).NotTo(BeZero())

			floats := dev.Floats(vbo)
			samples := s.Simulator().Surface().Samples()
			Expect(floats[1]).To(Equal(samples[0].Y))
			Expect(floats[len(floats)-3]).To(Equal(samples[len(samples)-1].X))
		})

		It("stops without drawing when exit is requested", func() {
			dev.Reset()
			Expect(s.Frame(input.Frame{Exit: true})).To(BeFalse())
			Expect(dev.Count("DrawElements")).To(Equal(0))
			Expect(s.Simulator().Orbit().Angle).To(BeZero())
		})
	})

	Describe("camera input", func() {
		It("moves forward at the configured speed", func() {
			s.Frame(input.Frame{Forward: true})
			Expect(s.Camera().Position.Z).To(BeNumerically("~", 1.05, 1e-12))
		})

		It("doubles the speed while boosting", func() {
			s.Frame(input.Frame{Forward: true, Boost: true})
			Expect(s.Camera().Position.Z).To(BeNumerically("~", 1.1, 1e-12))
		})

		It("treats the first cursor sample as a baseline", func() {
			before := s.Camera()
			s.Frame(input.Frame{HasCursor: true, CursorX: 400, CursorY: 300})
			Expect(s.Camera()).To(Equal(before))

			s.Frame(input.Frame{HasCursor: true, CursorX: 420, CursorY: 300})
			Expect(s.Camera().Yaw).To(BeNumerically("~", before.Yaw+2, 1e-9))
		})

		It("takes a fresh baseline after losing the cursor", func() {
			s.Frame(input.Frame{HasCursor: true, CursorX: 400, CursorY: 300})
			s.Frame(input.Frame{})
			before := s.Camera()

			s.Frame(input.Frame{HasCursor: true, CursorX: 900, CursorY: 50})
			Expect(s.Camera()).To(Equal(before))

			s.Frame(input.Frame{HasCursor: true, CursorX: 910, CursorY: 50})
			Expect(s.Camera().Yaw).To(BeNumerically("~", before.Yaw+1, 1e-9))
		})
	})

	Describe("diagnostic", func() {
		It("prints once per key press", func() {
			s.Frame(input.Frame{Info: true})
			s.Frame(input.Frame{Info: true})
			s.Frame(input.Frame{Info: true})

			Expect(out).To(gbytes.Say(`Object mass: 1\.000e\+26 kg\n`))
			Expect(out).To(gbytes.Say(`Object radius: 1\.000 m\n`))
			Expect(out).To(gbytes.Say(`Curvature: 7\.415556e-02\n`))
			Expect(out).NotTo(gbytes.Say("Object mass"))

			s.Frame(input.Frame{})
			s.Frame(input.Frame{Info: true})
			Expect(out).To(gbytes.Say("Object mass"))
		})
	})

	Describe("Close", func() {
		It("releases every device resource", func() {
			s.Frame(input.Frame{})
			s.Close()

			Expect(dev.Buffers).To(BeEmpty())
			Expect(dev.VertexArrays).To(BeEmpty())
			Expect(dev.Programs).To(BeEmpty())
			Expect(s.Simulator().Surface().Allocated()).To(BeFalse())
		})
	})
})

var _ = Describe("New", func() {
	It("rejects an invalid body", func() {
		cfg := smallConfig()
		cfg.Body.Mass = 0

		_, err := scene.New(cfg, gputest.NewRecorder(), nil)
		Expect(errors.Is(err, dynamo.ErrInvalidBody)).To(BeTrue())
	})

	It("fails on a shader error and frees the body mesh", func() {
		dev := gputest.NewRecorder()
		dev.FailCompile = true

		_, err := scene.New(smallConfig(), dev, nil)
		Expect(errors.Is(err, dynamo.ErrShaderCompile)).To(BeTrue())
		Expect(dev.Buffers).To(BeEmpty())
		Expect(dev.VertexArrays).To(BeEmpty())
	})

	It("binds the body's index buffer", func() {
		dev := gputest.NewRecorder()
		_, err := scene.New(smallConfig(), dev, nil)
		Expect(err).NotTo(HaveOccurred())

		bound := false
		for _, c := range dev.Calls {
			if c.Op == "BindBuffer" && c.Args[0] == gpu.ElementArrayBuffer {
				bound = true
			}
		}
		Expect(bound).To(BeTrue())
	})
})
