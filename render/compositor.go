// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/ggview"
)

// blitShader stretches the intermediate target over the whole surface
// with a single full-screen triangle. UVs are flipped in Y so the
// top-left origin of the scene buffer lands at the top of the window.
const blitShader = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var positions = array<vec2<f32>, 3>(
        vec2<f32>(-1.0, -1.0),
        vec2<f32>(3.0, -1.0),
        vec2<f32>(-1.0, 3.0),
    );
    let pos = positions[index];
    var out: VertexOutput;
    out.position = vec4<f32>(pos, 0.0, 1.0);
    out.uv = vec2<f32>(pos.x * 0.5 + 0.5, 1.0 - (pos.y * 0.5 + 0.5));
    return out;
}

@group(0) @binding(0) var scene_texture: texture_2d<f32>;
@group(0) @binding(1) var scene_sampler: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(scene_texture, scene_sampler, in.uv);
}
`

// Compositor owns the fixed blit pipeline that copies the intermediate
// target onto acquired surface frames. The pipeline, layout, and sampler
// are built once at startup; only the bind group is rebuilt, lazily,
// whenever the target generation it was built against has changed. That
// covers both resize recreation and the very first frame.
//
// Composite is the only code path in ggview that writes to swapchain
// images.
type Compositor struct {
	dev        *Device
	pipeline   *wgpu.RenderPipeline
	bindLayout *wgpu.BindGroupLayout
	sampler    *wgpu.Sampler

	bindGroup       *wgpu.BindGroup
	boundGeneration uint64

	clearColor wgpu.Color
}

// NewCompositor builds the blit pipeline for surfaces of the given
// format. Shader or pipeline build failures are initialization failures
// and therefore fatal.
func NewCompositor(dev *Device, format wgpu.TextureFormat, clear ggview.RGBA) (*Compositor, error) {
	shader, err := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "ggview blit shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: blitShader},
	})
	if err != nil {
		return nil, fmt.Errorf("render: blit shader compilation failed: %w", err)
	}
	defer shader.Release()

	bindLayout, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ggview blit bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: blit bind group layout creation failed: %w", err)
	}

	pipelineLayout, err := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "ggview blit pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindLayout},
	})
	if err != nil {
		bindLayout.Release()
		return nil, fmt.Errorf("render: blit pipeline layout creation failed: %w", err)
	}
	defer pipelineLayout.Release()

	pipeline, err := dev.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ggview blit pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		bindLayout.Release()
		return nil, fmt.Errorf("render: blit pipeline creation failed: %w", err)
	}

	sampler, err := dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "ggview blit sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})
	if err != nil {
		pipeline.Release()
		bindLayout.Release()
		return nil, fmt.Errorf("render: blit sampler creation failed: %w", err)
	}

	return &Compositor{
		dev:        dev,
		pipeline:   pipeline,
		bindLayout: bindLayout,
		sampler:    sampler,
		clearColor: wgpu.Color{R: clear.R, G: clear.G, B: clear.B, A: clear.A},
	}, nil
}

// InvalidateBindGroup drops the cached bind group immediately.
// ensureBindGroup would also notice the generation change on the next
// composite; dropping eagerly releases the old target view reference
// before the target itself is recreated.
func (c *Compositor) InvalidateBindGroup() {
	if c.bindGroup != nil {
		c.bindGroup.Release()
		c.bindGroup = nil
	}
	c.boundGeneration = 0
}

// ensureBindGroup rebuilds the bind group if it was built against a
// different target generation (or never built).
func (c *Compositor) ensureBindGroup(target *Target) error {
	gen := target.Generation()
	if c.bindGroup != nil && c.boundGeneration == gen {
		return nil
	}
	c.InvalidateBindGroup()

	bindGroup, err := c.dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ggview blit bind group",
		Layout: c.bindLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: target.View()},
			{Binding: 1, Sampler: c.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("render: blit bind group creation failed: %w", err)
	}
	c.bindGroup = bindGroup
	c.boundGeneration = gen
	return nil
}

// Composite draws the target over the frame and presents it.
// On error the frame is released without presenting.
func (c *Compositor) Composite(target *Target, frame *Frame) error {
	if err := c.ensureBindGroup(target); err != nil {
		frame.Release()
		return err
	}

	encoder, err := c.dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		frame.Release()
		return fmt.Errorf("render: command encoder creation failed: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ggview blit pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       frame.View(),
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: c.clearColor,
		}},
	})
	pass.SetPipeline(c.pipeline)
	pass.SetBindGroup(0, c.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	pass.End()
	pass.Release() // must happen before Finish

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		frame.Release()
		return fmt.Errorf("render: command encoding failed: %w", err)
	}
	c.dev.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	encoder.Release()

	frame.Present()
	return nil
}

// Release frees all pipeline objects.
func (c *Compositor) Release() {
	c.InvalidateBindGroup()
	if c.sampler != nil {
		c.sampler.Release()
		c.sampler = nil
	}
	if c.pipeline != nil {
		c.pipeline.Release()
		c.pipeline = nil
	}
	if c.bindLayout != nil {
		c.bindLayout.Release()
		c.bindLayout = nil
	}
}
