// Package colorize provides the batch conversion logic for turning a
// directory of KanjiVG files into colored stroke order diagrams.
//
// # Manager
//
// The Manager coordinates the entire run:
//
//  1. Validate settings
//  2. Resolve the input directory and create the output directory
//  3. List input files and compute output names
//  4. For each file, in name order: read, recolor, resize, annotate, write
//
// # Basic Usage
//
//	manager := colorize.NewManager(settings, afero.NewOsFs(), func(event colorize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Failure Model
//
// Files are converted one after another on the calling goroutine. The first
// read or write error stops the batch and is returned; files already written
// stay in place.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress may be polled from another goroutine while Run is working.
package colorize
