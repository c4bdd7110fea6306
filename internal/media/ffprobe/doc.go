// Package ffprobe executes ffprobe and decodes the JSON metadata cleaver
// needs to plan a split: container duration and the first audio stream's
// codec, sample rate, and channel count.
package ffprobe
