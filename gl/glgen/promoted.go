package main

import "strings"

// promotion lists the entry points an extension shares with the core version
// it was folded into. glext.h declares them only in the GL_VERSION_x_y block
// and leaves the extension's own block empty, so they are moved back under
// the extension when that version is cut. Names carry no gl / GL_ prefix.
// "A..B" covers A through B in header order, running to the end of A's block
// when B is absent.
type promotion struct {
	Extension string
	Enums     []string
	Commands  []string
}

// An entry point listed by more than one extension goes to the first.
var promotions = []promotion{
	// 3.0
	{"GL_ARB_depth_buffer_float", []string{"DEPTH_COMPONENT32F..FLOAT_32_UNSIGNED_INT_24_8_REV"}, nil},
	{"GL_ARB_framebuffer_object",
		[]string{"INVALID_FRAMEBUFFER_OPERATION..TEXTURE_INTENSITY_TYPE"},
		[]string{"IsRenderbuffer..FramebufferTextureLayer"}},
	{"GL_ARB_framebuffer_sRGB", []string{"FRAMEBUFFER_SRGB"}, nil},
	{"GL_ARB_half_float_vertex", []string{"HALF_FLOAT"}, nil},
	{"GL_ARB_map_buffer_range",
		[]string{"MAP_READ_BIT..MAP_UNSYNCHRONIZED_BIT"},
		[]string{"MapBufferRange", "FlushMappedBufferRange"}},
	{"GL_ARB_texture_compression_rgtc", []string{"COMPRESSED_RED_RGTC1..COMPRESSED_SIGNED_RG_RGTC2"}, nil},
	{"GL_ARB_texture_rg", []string{"RG..RG32UI"}, nil},
	{"GL_ARB_vertex_array_object",
		[]string{"VERTEX_ARRAY_BINDING"},
		[]string{"BindVertexArray..IsVertexArray"}},

	// 3.1
	{"GL_ARB_copy_buffer",
		[]string{"COPY_READ_BUFFER", "COPY_WRITE_BUFFER"},
		[]string{"CopyBufferSubData"}},
	{"GL_ARB_uniform_buffer_object",
		[]string{"UNIFORM_BUFFER..INVALID_INDEX"},
		[]string{"GetIntegeri_v", "BindBufferRange", "BindBufferBase", "GetUniformIndices..UniformBlockBinding"}},

	// 3.2
	{"GL_ARB_depth_clamp", []string{"DEPTH_CLAMP"}, nil},
	{"GL_ARB_draw_elements_base_vertex", nil, []string{"DrawElementsBaseVertex..MultiDrawElementsBaseVertex"}},
	{"GL_ARB_provoking_vertex",
		[]string{"QUADS_FOLLOW_PROVOKING_VERTEX_CONVENTION..PROVOKING_VERTEX"},
		[]string{"ProvokingVertex"}},
	{"GL_ARB_seamless_cube_map", []string{"TEXTURE_CUBE_MAP_SEAMLESS"}, nil},
	{"GL_ARB_sync",
		[]string{"MAX_SERVER_WAIT_TIMEOUT..SYNC_FLUSH_COMMANDS_BIT"},
		[]string{"FenceSync..GetSynciv"}},
	{"GL_ARB_texture_multisample",
		[]string{"SAMPLE_POSITION..MAX_INTEGER_SAMPLES"},
		[]string{"TexImage2DMultisample..SampleMaski"}},

	// 3.3
	{"GL_ARB_blend_func_extended",
		[]string{"SRC1_COLOR..MAX_DUAL_SOURCE_DRAW_BUFFERS"},
		[]string{"BindFragDataLocationIndexed", "GetFragDataIndex"}},
	{"GL_ARB_occlusion_query2", []string{"ANY_SAMPLES_PASSED"}, nil},
	{"GL_ARB_sampler_objects",
		[]string{"SAMPLER_BINDING"},
		[]string{"GenSamplers..GetSamplerParameterIuiv"}},
	{"GL_ARB_texture_rgb10_a2ui", []string{"RGB10_A2UI"}, nil},
	{"GL_ARB_texture_swizzle", []string{"TEXTURE_SWIZZLE_R..TEXTURE_SWIZZLE_RGBA"}, nil},
	{"GL_ARB_timer_query",
		[]string{"TIME_ELAPSED", "TIMESTAMP"},
		[]string{"QueryCounter..GetQueryObjectui64v"}},
	{"GL_ARB_vertex_type_2_10_10_10_rev",
		[]string{"INT_2_10_10_10_REV"},
		[]string{"VertexAttribP1ui..SecondaryColorP3uiv"}},

	// 4.0
	{"GL_ARB_draw_indirect",
		[]string{"DRAW_INDIRECT_BUFFER", "DRAW_INDIRECT_BUFFER_BINDING"},
		[]string{"DrawArraysIndirect", "DrawElementsIndirect"}},
	{"GL_ARB_gpu_shader5", []string{"GEOMETRY_SHADER_INVOCATIONS..MAX_VERTEX_STREAMS"}, nil},
	{"GL_ARB_gpu_shader_fp64",
		[]string{"DOUBLE_VEC2..DOUBLE_MAT4x3"},
		[]string{"Uniform1d..GetUniformdv"}},
	{"GL_ARB_shader_subroutine",
		[]string{"ACTIVE_SUBROUTINES..COMPATIBLE_SUBROUTINES"},
		[]string{"GetSubroutineUniformLocation..GetProgramStageiv"}},
	{"GL_ARB_tessellation_shader",
		[]string{"PATCHES..TESS_CONTROL_SHADER"},
		[]string{"PatchParameteri", "PatchParameterfv"}},
	{"GL_ARB_transform_feedback2",
		[]string{"TRANSFORM_FEEDBACK..TRANSFORM_FEEDBACK_BINDING"},
		[]string{"BindTransformFeedback..DrawTransformFeedback"}},
	{"GL_ARB_transform_feedback3",
		[]string{"MAX_TRANSFORM_FEEDBACK_BUFFERS"},
		[]string{"DrawTransformFeedbackStream..GetQueryIndexediv"}},

	// 4.1
	{"GL_ARB_ES2_compatibility",
		[]string{"FIXED..MAX_FRAGMENT_UNIFORM_VECTORS", "RGB565"},
		[]string{"ReleaseShaderCompiler..ClearDepthf"}},
	{"GL_ARB_get_program_binary",
		[]string{"PROGRAM_BINARY_RETRIEVABLE_HINT..PROGRAM_BINARY_FORMATS"},
		[]string{"GetProgramBinary..ProgramParameteri"}},
	{"GL_ARB_separate_shader_objects",
		[]string{"VERTEX_SHADER_BIT..PROGRAM_PIPELINE_BINDING"},
		[]string{"UseProgramStages..GetProgramPipelineInfoLog"}},
	{"GL_ARB_vertex_attrib_64bit", nil, []string{"VertexAttribL1d..GetVertexAttribLdv"}},
	{"GL_ARB_viewport_array",
		[]string{"MAX_VIEWPORTS..UNDEFINED_VERTEX"},
		[]string{"ViewportArrayv..GetDoublei_v"}},

	// 4.2
	{"GL_ARB_base_instance", nil, []string{"DrawArraysInstancedBaseInstance..DrawElementsInstancedBaseVertexBaseInstance"}},
	{"GL_ARB_compressed_texture_pixel_storage", []string{"UNPACK_COMPRESSED_BLOCK_WIDTH..PACK_COMPRESSED_BLOCK_SIZE"}, nil},
	{"GL_ARB_internalformat_query",
		[]string{"NUM_SAMPLE_COUNTS"},
		[]string{"GetInternalformativ"}},
	{"GL_ARB_map_buffer_alignment", []string{"MIN_MAP_BUFFER_ALIGNMENT"}, nil},
	{"GL_ARB_shader_atomic_counters",
		[]string{"ATOMIC_COUNTER_BUFFER..UNSIGNED_INT_ATOMIC_COUNTER"},
		[]string{"GetActiveAtomicCounterBufferiv"}},
	{"GL_ARB_shader_image_load_store",
		[]string{"VERTEX_ATTRIB_ARRAY_BARRIER_BIT..MAX_COMBINED_IMAGE_UNIFORMS"},
		[]string{"BindImageTexture", "MemoryBarrier"}},
	{"GL_ARB_texture_storage",
		[]string{"TEXTURE_IMMUTABLE_FORMAT"},
		[]string{"TexStorage1D..TexStorage3D"}},
	{"GL_ARB_transform_feedback_instanced", nil, []string{"DrawTransformFeedbackInstanced", "DrawTransformFeedbackStreamInstanced"}},

	// 4.3
	{"GL_ARB_ES3_compatibility", []string{"COMPRESSED_RGB8_ETC2..MAX_ELEMENT_INDEX"}, nil},
	{"GL_ARB_clear_buffer_object", nil, []string{"ClearBufferData", "ClearBufferSubData"}},
	{"GL_ARB_compute_shader",
		[]string{"COMPUTE_SHADER..COMPUTE_SHADER_BIT"},
		[]string{"DispatchCompute", "DispatchComputeIndirect"}},
	{"GL_ARB_copy_image", nil, []string{"CopyImageSubData"}},
	{"GL_KHR_debug",
		[]string{"DEBUG_OUTPUT_SYNCHRONOUS..CONTEXT_FLAG_DEBUG_BIT"},
		[]string{"DebugMessageControl..GetObjectPtrLabel"}},
	{"GL_ARB_explicit_uniform_location", []string{"MAX_UNIFORM_LOCATIONS"}, nil},
	{"GL_ARB_framebuffer_no_attachments",
		[]string{"FRAMEBUFFER_DEFAULT_WIDTH..MAX_FRAMEBUFFER_SAMPLES"},
		[]string{"FramebufferParameteri", "GetFramebufferParameteriv"}},
	{"GL_ARB_internalformat_query2",
		[]string{"INTERNALFORMAT_SUPPORTED..VIEW_CLASS_BPTC_FLOAT"},
		[]string{"GetInternalformati64v"}},
	{"GL_ARB_invalidate_subdata", nil, []string{"InvalidateTexSubImage..InvalidateSubFramebuffer"}},
	{"GL_ARB_multi_draw_indirect", nil, []string{"MultiDrawArraysIndirect", "MultiDrawElementsIndirect"}},
	{"GL_ARB_program_interface_query",
		[]string{"UNIFORM..IS_PER_PATCH"},
		[]string{"GetProgramInterfaceiv..GetProgramResourceLocationIndex"}},
	{"GL_ARB_shader_storage_buffer_object",
		[]string{"SHADER_STORAGE_BUFFER..MAX_COMBINED_SHADER_OUTPUT_RESOURCES"},
		[]string{"ShaderStorageBlockBinding"}},
	{"GL_ARB_stencil_texturing", []string{"DEPTH_STENCIL_TEXTURE_MODE"}, nil},
	{"GL_ARB_texture_buffer_range",
		[]string{"TEXTURE_BUFFER_OFFSET..TEXTURE_BUFFER_OFFSET_ALIGNMENT"},
		[]string{"TexBufferRange"}},
	{"GL_ARB_texture_storage_multisample", nil, []string{"TexStorage2DMultisample", "TexStorage3DMultisample"}},
	{"GL_ARB_texture_view",
		[]string{"TEXTURE_VIEW_MIN_LEVEL..TEXTURE_IMMUTABLE_LEVELS"},
		[]string{"TextureView"}},
	{"GL_ARB_vertex_attrib_binding",
		[]string{"VERTEX_ATTRIB_BINDING..VERTEX_BINDING_BUFFER"},
		[]string{"BindVertexBuffer..VertexBindingDivisor"}},

	// 4.4
	{"GL_ARB_buffer_storage",
		[]string{"MAP_PERSISTENT_BIT..BUFFER_STORAGE_FLAGS"},
		[]string{"BufferStorage"}},
	{"GL_ARB_clear_texture",
		[]string{"CLEAR_TEXTURE"},
		[]string{"ClearTexImage", "ClearTexSubImage"}},
	{"GL_ARB_enhanced_layouts", []string{"LOCATION_COMPONENT..TRANSFORM_FEEDBACK_BUFFER_STRIDE"}, nil},
	{"GL_ARB_multi_bind", nil, []string{"BindBuffersBase..BindVertexBuffers"}},
	{"GL_ARB_query_buffer_object", []string{"QUERY_BUFFER..QUERY_RESULT_NO_WAIT"}, nil},
	{"GL_ARB_texture_mirror_clamp_to_edge", []string{"MIRROR_CLAMP_TO_EDGE"}, nil},

	// 4.5
	{"GL_ARB_clip_control",
		[]string{"NEGATIVE_ONE_TO_ONE..CLIP_DEPTH_MODE"},
		[]string{"ClipControl"}},
	{"GL_ARB_conditional_render_inverted", []string{"QUERY_WAIT_INVERTED..QUERY_BY_REGION_NO_WAIT_INVERTED"}, nil},
	{"GL_ARB_cull_distance", []string{"MAX_CULL_DISTANCES", "MAX_COMBINED_CLIP_AND_CULL_DISTANCES"}, nil},
	{"GL_ARB_direct_state_access",
		[]string{"TEXTURE_TARGET", "QUERY_TARGET"},
		[]string{"CreateTransformFeedbacks..GetQueryBufferObjectuiv"}},
	{"GL_ARB_ES3_1_compatibility", nil, []string{"MemoryBarrierByRegion"}},
	{"GL_ARB_get_texture_sub_image", nil, []string{"GetTextureSubImage", "GetCompressedTextureSubImage"}},
	{"GL_KHR_context_flush_control", []string{"CONTEXT_RELEASE_BEHAVIOR", "CONTEXT_RELEASE_BEHAVIOR_FLUSH"}, nil},
	{"GL_KHR_robustness",
		[]string{"CONTEXT_LOST", "GUILTY_CONTEXT_RESET..NO_RESET_NOTIFICATION"},
		[]string{"GetGraphicsResetStatus", "ReadnPixels", "GetnUniformfv", "GetnUniformiv", "GetnUniformuiv"}},
	{"GL_ARB_texture_barrier", nil, []string{"TextureBarrier"}},

	// 4.6
	{"GL_ARB_polygon_offset_clamp",
		[]string{"POLYGON_OFFSET_CLAMP"},
		[]string{"PolygonOffsetClamp"}},
	{"GL_ARB_spirv_extensions", []string{"SPIR_V_EXTENSIONS", "NUM_SPIR_V_EXTENSIONS"}, nil},
	{"GL_ARB_texture_filter_anisotropic", []string{"TEXTURE_MAX_ANISOTROPY", "MAX_TEXTURE_MAX_ANISOTROPY"}, nil},
}

// promotedNames maps the prefixed names of core declarations to the
// extension that introduced them. Spans are resolved against the order of
// the GL_VERSION blocks in headers.
func promotedNames(table []promotion, headers ...*Header) map[string]string {
	var enums, cmds [][]string
	for _, h := range headers {
		enums = appendBlocks(enums, len(h.Enums), func(i int) (string, string) {
			return h.Enums[i].Feature, h.Enums[i].Name
		})
		cmds = appendBlocks(cmds, len(h.Protos), func(i int) (string, string) {
			return h.Protos[i].Feature, h.Protos[i].Name
		})
	}

	owner := make(map[string]string)
	claim := func(blocks [][]string, prefix, ext string, items []string) {
		for _, item := range items {
			first, last, span := strings.Cut(item, "..")
			first = prefix + first
			if !span {
				if _, ok := owner[first]; !ok {
					owner[first] = ext
				}
				continue
			}
			for _, name := range resolveSpan(blocks, first, prefix+last) {
				if _, ok := owner[name]; !ok {
					owner[name] = ext
				}
			}
		}
	}
	for _, p := range table {
		claim(enums, "GL_", p.Extension, p.Enums)
		claim(cmds, "gl", p.Extension, p.Commands)
	}
	return owner
}

// appendBlocks splits the core declarations at(0..n) into one name list per
// consecutive GL_VERSION block.
func appendBlocks(blocks [][]string, n int, at func(int) (feature, name string)) [][]string {
	prev := ""
	for i := 0; i < n; i++ {
		feature, name := at(i)
		if !versionRe.MatchString(feature) {
			prev = ""
			continue
		}
		if feature != prev {
			blocks = append(blocks, nil)
			prev = feature
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], name)
	}
	return blocks
}

func resolveSpan(blocks [][]string, first, last string) []string {
	for _, names := range blocks {
		for i, name := range names {
			if name != first {
				continue
			}
			for j := i; j < len(names); j++ {
				if names[j] == last {
					return names[i : j+1]
				}
			}
			return names[i:]
		}
	}
	return nil
}
