/*
Package filmstrip produces preview rasters for media files: a single
resized still for images, or a grid of frames sampled at equally spaced
timestamps for videos, composed into one raster without playing the
video.

# Generation

Generator ties the pieces together. Its Generate method never fails;
whatever goes wrong is logged, counted, and absorbed into a placeholder
raster so callers always receive a drawable image:

	gen := filmstrip.New(video.FFmpeg{}, raster.FileDecoder{}, cacheBackend)
	img := gen.Generate(ctx, ref, filmstrip.Options{
	    Grid:  filmstrip.GridShape{Rows: 2, Columns: 3},
	    Still: filmstrip.StillSize{Width: 320, Height: 180},
	})

Render is the fallible layer underneath for callers that need to know
why generation failed, such as batch tools reporting per-file outcomes.
Failures carry a class sentinel (ErrVideoUnplayable, ErrImageUnloadable)
matchable with errors.Is.

# Sampling and composition

A video with duration D sampled for an R x C grid yields R*C frames at
offsets i*(D/(R*C)), the first at zero. Frames keep their time order in
the grid: tile i sits at row i/C, column i%C, row zero at the top. If
any frame fails to extract, the whole sampling fails; there are no
partial filmstrips.

# Caching

A cache.Cache passed to New short-circuits repeated generation by media
identity. Only successfully composed rasters are written back;
placeholders are never cached. A nil cache disables the layer entirely.

# Asynchronous requests

GenerateAsync wraps Generate in a one-shot Request that starts Pending
and publishes exactly once. Because Generate absorbs failures, such
requests always terminate Succeeded.
*/
package filmstrip
