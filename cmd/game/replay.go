package main

import (
	"fmt"
	"io"

	"github.com/younwookim/snake/internal/application/replay"
)

// runReplay re-simulates a recording without a window and checks that it
// reaches the outcome stored in the file
func runReplay(w io.Writer, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	r, err := replay.NewReplayer(*data)
	if err != nil {
		return err
	}

	got, err := r.Verify()
	fmt.Fprintf(w, "replay %s: seed %d, grid %dx%d, %d frames\n",
		filename, r.Seed(), r.Grid().Width, r.Grid().Height, r.TotalFrames())
	fmt.Fprintf(w, "outcome: state=%s score=%d food=%d length=%d\n",
		got.State, got.Score, got.FoodEaten, got.Length)
	if err != nil {
		return err
	}

	if _, ok := r.Expected(); !ok {
		fmt.Fprintln(w, "no recorded outcome to compare against")
		return nil
	}
	fmt.Fprintln(w, "outcome matches recording")
	return nil
}
