// Package simulator animates the canned robot scene shown next to the
// block editor. Motion is random: the scene does not interpret the program,
// it only advances one frame per generated line.
package simulator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	maxStep = 0.5  // scene units per frame on each axis
	maxTurn = 15.0 // degrees per frame
)

// Pose is the robot position on the floor plane and its heading in degrees.
type Pose struct {
	X       float64
	Z       float64
	Heading float64
}

func (p Pose) String() string {
	return fmt.Sprintf("x=%.2f z=%.2f heading=%.1f°", p.X, p.Z, p.Heading)
}

// Frame is the pose reached after running one line of the program.
type Frame struct {
	Line string
	Pose Pose
}

// Scene holds a single robot.
type Scene struct {
	rng  *rand.Rand
	pose Pose
}

// New returns a scene with the robot at the origin. Equal seeds produce
// equal motion.
func New(seed uint64) *Scene {
	return &Scene{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pose returns the current robot pose.
func (s *Scene) Pose() Pose { return s.pose }

// Reset moves the robot back to the origin.
func (s *Scene) Reset() { s.pose = Pose{} }

// Step applies one random delta and returns the new pose.
func (s *Scene) Step() Pose {
	s.pose.X += (s.rng.Float64()*2 - 1) * maxStep
	s.pose.Z += (s.rng.Float64()*2 - 1) * maxStep
	h := s.pose.Heading + (s.rng.Float64()*2-1)*maxTurn
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	s.pose.Heading = h
	return s.pose
}

// Run advances one frame per non-empty line of code.
func (s *Scene) Run(code string) []Frame {
	var frames []Frame
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		frames = append(frames, Frame{Line: line, Pose: s.Step()})
	}
	return frames
}
