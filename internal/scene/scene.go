package scene

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"spincube/internal/debug"
	"spincube/internal/frame"
	"spincube/internal/geometry"
	"spincube/internal/view"
)

// clearColor is (0.1, 0.15, 0.18, 1).
var clearColor = rl.NewColor(26, 38, 46, 255)

// cubeColor is the default fixed-function material diffuse (0.8 gray).
var cubeColor = rl.NewColor(204, 204, 204, 255)

// lightEye is the point light position in eye space: it was set while the
// modelview was identity, so it moves with the camera.
var lightEye = [3]float32{2, 2, 2}

// ambient is global ambient (0.2) times material ambient (0.2).
const ambient = float32(0.04)

// Scene owns the cube mesh, its lit material and the camera. GPU resources are
// created on the first Render so they exist only after the window does.
type Scene struct {
	Camera     rl.Camera3D
	Overlay    *debug.Debug
	halfExtent float32
	buf        geometry.Buffer
	pin        runtime.Pinner
	mesh       rl.Mesh
	mtl        rl.Material
	loaded     bool
}

// New returns a scene looking at the origin from the fixed eye position.
func New(overlay *debug.Debug) *Scene {
	s := &Scene{Overlay: overlay}
	s.Camera.Position = rl.NewVector3(view.Eye.X(), view.Eye.Y(), view.Eye.Z())
	s.Camera.Target = rl.NewVector3(view.Target.X(), view.Target.Y(), view.Target.Z())
	s.Camera.Up = rl.NewVector3(view.Up.X(), view.Up.Y(), view.Up.Z())
	s.Camera.Fovy = view.FovY
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// ensureLoaded builds the cube buffer once and uploads it.
func (s *Scene) ensureLoaded(halfExtent float32) {
	if s.loaded && s.halfExtent == halfExtent {
		return
	}
	s.unloadMesh()
	faces := geometry.Cube(halfExtent)
	s.buf = geometry.NewBuffer(faces[:])
	s.mesh = s.uploadBuffer()
	s.halfExtent = halfExtent
	if !s.loaded {
		s.mtl = rl.LoadMaterialDefault()
		if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = cubeColor
		}
		if shader := loadLitShader(); rl.IsShaderValid(shader) {
			s.mtl.Shader = shader
		}
	}
	s.loaded = true
}

// uploadBuffer copies s.buf into GPU buffers. The mesh keeps pointing at s.buf:
// DrawMesh takes the indexed path only while Indices is set. The slices stay pinned
// until unloadMesh because the mesh is handed to C on every draw. UnloadMesh
// frees the GPU buffers only; the Go slices stay owned by the Scene.
func (s *Scene) uploadBuffer() rl.Mesh {
	a := s.buf.Attributes()
	mesh := rl.Mesh{
		VertexCount:   a.VertexCount,
		TriangleCount: a.TriangleCount,
		Vertices:      a.Vertices,
		Normals:       a.Normals,
		Texcoords:     a.Texcoords,
		Indices:       a.Indices,
	}
	s.pin.Pin(mesh.Vertices)
	s.pin.Pin(mesh.Normals)
	s.pin.Pin(mesh.Texcoords)
	s.pin.Pin(mesh.Indices)
	rl.UploadMesh(&mesh, false)
	return mesh
}

func (s *Scene) unloadMesh() {
	if s.mesh.VaoID == 0 {
		return
	}
	rl.UnloadMesh(&s.mesh)
	s.mesh = rl.Mesh{}
	s.pin.Unpin()
	s.buf = geometry.Buffer{}
}

// Render clears the frame and draws the cube with f's transforms, then the overlay.
// Implements frame.Renderer.
func (s *Scene) Render(f frame.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(clearColor)
	s.ensureLoaded(f.HalfExtent)

	rl.BeginMode3D(s.Camera)
	// BeginMode3D uses raylib's clip distances; replace both matrices with ours.
	rl.SetMatrixProjection(toMatrix(f.Projection))
	rl.SetMatrixModelview(toMatrix(f.View))
	setLitShaderUniforms(s.mtl.Shader)
	rl.DrawMesh(s.mesh, s.mtl, toMatrix(f.Model))
	rl.EndMode3D()

	if s.Overlay != nil {
		s.Overlay.Draw(f.Yaw, f.Pitch)
	}
}

// Unload frees the mesh and material.
func (s *Scene) Unload() {
	if !s.loaded {
		return
	}
	s.unloadMesh()
	rl.UnloadMaterial(s.mtl)
	s.loaded = false
}

// toMatrix converts a column-major mgl32 matrix; raylib's Mn is mgl32's m[n].
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// loadLitShader returns a per-fragment version of a single fixed-function point light
// with the default material. Lighting is computed in eye space.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragEyePos;
out vec3 fragEyeNormal;
void main() {
  mat4 modelView = matView * matModel;
  vec4 eyePos = modelView * vec4(vertexPosition, 1.0);
  fragEyePos = eyePos.xyz;
  fragEyeNormal = mat3(modelView) * vertexNormal;
  gl_Position = matProjection * eyePos;
}
`
	litFS = `#version 330
in vec3 fragEyePos;
in vec3 fragEyeNormal;
uniform vec4 colDiffuse;
uniform vec3 lightPos;
uniform float ambient;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragEyeNormal);
  vec3 L = normalize(lightPos - fragEyePos);
  float NdotL = max(dot(N, L), 0.0);
  finalColor = vec4(vec3(ambient) + colDiffuse.rgb * NdotL, colDiffuse.a);
}
`
)

// setLitShaderUniforms sets the light position and ambient term (cgo-safe: local arrays).
func setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	light := [3]float32{lightEye[0], lightEye[1], lightEye[2]}
	if loc := rl.GetShaderLocation(shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, light[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{ambient}, rl.ShaderUniformFloat)
	}
}
