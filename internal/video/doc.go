// Package video opens video files for duration probing and single-frame
// extraction.
//
// The Source and Handle interfaces keep the rest of the application
// independent of how frames are produced; the FFmpeg implementation
// shells out to ffprobe for stream facts and to ffmpeg for PNG frame
// extraction over a pipe. Nothing here plays or transcodes video.
package video
