// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainlab/internal/logger"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// LoadProgram reads <name>.vert and <name>.frag from dir and compiles them.
func LoadProgram(dir, name string) (uint32, error) {
	vertPath := filepath.Join(dir, name+".vert")
	fragPath := filepath.Join(dir, name+".frag")

	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", vertPath, err)
	}
	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", fragPath, err)
	}

	program, err := CompileProgram(string(vertSrc), string(fragSrc))
	if err != nil {
		return 0, fmt.Errorf("compiling %s: %w", name, err)
	}

	logger.Info("shader program loaded from files",
		zap.String("vertex", vertPath),
		zap.String("fragment", fragPath),
	)
	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// CheckError queries the GL error state and logs any pending error code.
// Call after a pipeline stage to surface silent GL failures.
func CheckError(stage string) {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		logger.Error("GL error",
			zap.String("stage", stage),
			zap.Uint32("code", code),
		)
	}
}
