package editor

import (
	"testing"
	"time"

	"github.com/gogpu/editor/scene"
	"github.com/gogpu/gputypes"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.vertexCapacity != DefaultVertexCapacity || o.indexCapacity != DefaultIndexCapacity {
		t.Errorf("capacities = %d/%d", o.vertexCapacity, o.indexCapacity)
	}
	if o.clearColor != scene.Black {
		t.Errorf("clearColor = %+v, want black", o.clearColor)
	}
	if o.format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm", o.format)
	}
	if o.spirv {
		t.Error("spirv should default to false")
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithVertexCapacity(10),
		WithIndexCapacity(15),
		WithCopyAlignment(16),
		WithClearColor(scene.White),
		WithTextureFormat(gputypes.TextureFormatRGBA8Unorm),
		WithSPIRV(true),
		WithDestroyTimeout(time.Millisecond),
	} {
		opt(&o)
	}

	if o.vertexCapacity != 10 || o.indexCapacity != 15 || o.copyAlignment != 16 {
		t.Errorf("capacities = %d/%d/%d", o.vertexCapacity, o.indexCapacity, o.copyAlignment)
	}
	if o.clearColor != scene.White || o.format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("clear/format = %+v/%v", o.clearColor, o.format)
	}
	if !o.spirv || o.destroyTimeout != time.Millisecond {
		t.Errorf("spirv/timeout = %v/%v", o.spirv, o.destroyTimeout)
	}
}
