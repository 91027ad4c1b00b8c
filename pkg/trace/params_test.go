package trace

import "testing"

func TestParseShader(t *testing.T) {
	tests := []struct {
		name   string
		shader Shader
	}{
		{"raytrace", ShaderRaytrace},
		{"eyelight", ShaderEyelight},
		{"normal", ShaderNormal},
		{"texcoord", ShaderTexcoord},
		{"color", ShaderColor},
		{"toon", ShaderToon},
		{"frosted", ShaderFrosted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shader, err := ParseShader(tt.name)
			if err != nil {
				t.Fatalf("ParseShader(%q) returned error: %v", tt.name, err)
			}
			if shader != tt.shader {
				t.Errorf("ParseShader(%q) = %d, expected %d", tt.name, shader, tt.shader)
			}
			if got := shader.String(); got != tt.name {
				t.Errorf("String() = %q, expected %q", got, tt.name)
			}
		})
	}
}

func TestParseShaderUnknown(t *testing.T) {
	if _, err := ParseShader("volumetric"); err == nil {
		t.Error("expected an error for an unknown shader name")
	}
	if got := Shader(42).String(); got != "unknown" {
		t.Errorf("String() = %q, expected %q", got, "unknown")
	}
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()
	if params.Resolution != 720 {
		t.Errorf("Resolution = %d, expected 720", params.Resolution)
	}
	if params.Samples != 256 {
		t.Errorf("Samples = %d, expected 256", params.Samples)
	}
	if params.Bounces != 8 {
		t.Errorf("Bounces = %d, expected 8", params.Bounces)
	}
	if params.Shader != ShaderRaytrace {
		t.Errorf("Shader = %v, expected raytrace", params.Shader)
	}
	if params.Clamp != 100 {
		t.Errorf("Clamp = %v, expected 100", params.Clamp)
	}
	if params.NoParallel {
		t.Error("NoParallel = true, expected parallel rendering by default")
	}
}
