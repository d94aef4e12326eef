// Package quarkgl provides a minimal, predictable software 3D engine for the navigator.
//
// QuarkGL is intended for visualization: wireframes, axes, small markers, and an
// orbiting view camera. It is not a game engine and does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Near-plane rejection → Rasterization → Frame output.
//
// Meshes are either triangle lists or line lists. The renderer is software-only and
// draws into a caller-provided Target; it avoids allocations in the render hot path.
// All math is float32.
package quarkgl
