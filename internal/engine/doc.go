// Package engine mediates access to the external media engine (ffmpeg and
// ffprobe) behind a narrow interface: probe metadata, detect silence, and
// extract a byte range losslessly.
//
// The engine never decodes audio into cleaver's memory. Silence detection
// performs one full-file pass and collects only the textual diagnostic
// stream; extraction runs in copy mode so encoded bytes pass through
// untouched. Command execution goes through an injectable Executor so the
// pipeline is testable without any native binary.
package engine
